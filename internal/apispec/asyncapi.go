// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package apispec

import (
	"fmt"
	"strings"

	"github.com/pdiddy/profile-engine/internal/textutil"
	"github.com/pdiddy/profile-engine/pkg/types"
)

// asyncAPIDocument builds the AsyncAPI 3.0 document tree from the resolved
// channel set.
func asyncAPIDocument(cfg *types.Configuration, channels []channel) map[string]any {
	title := textutil.Title(cfg.ProfileName)

	channelMap := make(map[string]any, len(channels))
	operations := make(map[string]any, len(channels))
	messages := make(map[string]any, len(channels))

	names := make([]string, len(channels))
	for i, ch := range channels {
		names[i] = ch.Collection
		camel := textutil.UpperCamel(ch.Collection)

		filters := make([]any, len(ch.Filters))
		for j, f := range ch.Filters {
			filters[j] = map[string]any{
				"name":        f.Name,
				"description": f.Description,
				"schema":      filterValueSchema(f),
			}
		}

		channelMap[string(ch.ID)] = map[string]any{
			"address":     ch.Address,
			"description": fmt.Sprintf("%s observation notifications", textutil.Title(ch.Collection)),
			"x-ogc-subscription": map[string]any{
				"filters": filters,
			},
			"messages": map[string]any{
				fmt.Sprintf("%sUpdate", ch.Collection): map[string]any{
					"$ref": fmt.Sprintf("#/components/messages/%sObservation", camel),
				},
			},
		}

		operations[fmt.Sprintf("receive%sUpdate", camel)] = map[string]any{
			"action":  "receive",
			"channel": map[string]any{"$ref": fmt.Sprintf("#/channels/%s", ch.ID)},
			"messages": []any{
				map[string]any{"$ref": fmt.Sprintf("#/channels/%s/messages/%sUpdate", ch.ID, ch.Collection)},
			},
		}

		messages[fmt.Sprintf("%sObservation", camel)] = observationPayload()
	}

	return map[string]any{
		"asyncapi": "3.0.0",
		"info": map[string]any{
			"title":       fmt.Sprintf("%s Profile AsyncAPI", title),
			"version":     "1.0.0",
			"description": fmt.Sprintf("Real-time notifications for %s", strings.Join(names, ", ")),
		},
		"servers": map[string]any{
			"production": map[string]any{
				"host":        "localhost:5672",
				"protocol":    "amqp",
				"description": "RabbitMQ broker",
			},
		},
		"channels":   channelMap,
		"operations": operations,
		"components": map[string]any{"messages": messages},
	}
}

// observationPayload is the fixed message payload schema: a GeoJSON
// feature carrying at least an id and a timestamp.
func observationPayload() map[string]any {
	return map[string]any{
		"payload": map[string]any{
			"type":     "object",
			"required": []any{"type", "properties"},
			"properties": map[string]any{
				"type": map[string]any{"type": "string", "const": "Feature"},
				"properties": map[string]any{
					"type":     "object",
					"required": []any{"id", "timestamp"},
					"properties": map[string]any{
						"id":        map[string]any{"type": "string"},
						"timestamp": map[string]any{"type": "string", "format": "date-time"},
					},
				},
			},
		},
	}
}
