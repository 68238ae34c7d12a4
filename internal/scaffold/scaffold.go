// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scaffold handles the filesystem side of profile generation: the
// profile directory layout, the supporting files (Makefile, README,
// metanorma configuration, AMQP validation script), and the final write of
// a fully validated artifact set. The engine itself never touches the
// filesystem; scaffold runs last, after every check has passed.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/profile-engine/internal/fileset"
	"github.com/pdiddy/profile-engine/pkg/types"
)

// layoutDirs is the directory skeleton of a generated profile.
var layoutDirs = []string{
	"requirements/core",
	"abstract_tests/core",
	"recommendations/core",
	"sections",
	"examples",
}

// SupportingFiles renders the non-normative files shipped with every
// profile: the metanorma build Makefile, the README, the metanorma
// deployment config, and (with messaging) the AMQP channel check script.
func SupportingFiles(cfg *types.Configuration) *fileset.Set {
	out := fileset.New()
	out.Add("Makefile", []byte(makefile(cfg.ProfileName+"_profile")))
	out.Add("README.md", []byte(readme(cfg)))
	out.Add("metanorma.yml", []byte(`---
metanorma:
  deploy:
    email: "ci@metanorma.org"
`))
	if cfg.IncludeMessaging {
		out.AddMode("custom_amqp_test/test_asyncapi_amqp.py", []byte(amqpTestScript), 0o755)
	}
	return out
}

// Write persists a validated artifact set into dir. An existing profile
// directory is refused unless overwrite is set, so a stale profile is
// never silently mixed with a fresh run.
func Write(dir string, files *fileset.Set, overwrite bool) error {
	if _, err := os.Stat(dir); err == nil && !overwrite {
		return fmt.Errorf("profile directory %s already exists: pass --force to regenerate", dir)
	} else if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("checking profile directory: %w", err)
	}

	for _, sub := range layoutDirs {
		if err := os.MkdirAll(filepath.Join(dir, filepath.FromSlash(sub)), 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", sub, err)
		}
	}
	return files.WriteAll(dir)
}

func makefile(docName string) string {
	return fmt.Sprintf(`all: pdf

pdf:
	docker run --rm \
	  -v "$$(pwd)":/metanorma \
	  -v ${HOME}/.fontist/fonts/:/config/fonts \
	  metanorma/metanorma metanorma compile \
	  --agree-to-terms -t ogc -x pdf,html,doc %s.adoc

clean:
	rm -f %s.pdf %s.html %s.doc %s.xml

.PHONY: all pdf clean
`, docName, docName, docName, docName, docName)
}

func readme(cfg *types.Configuration) string {
	var collections strings.Builder
	for _, c := range cfg.Collections {
		fmt.Fprintf(&collections, "- **%s**: `/collections/%s/items` (Query types: %s, Formats: %s)\n",
			c.Name, c.Name, strings.Join(c.QueryTypes, ", "), strings.Join(c.Formats, ", "))
	}

	validate := "```bash\n# OpenAPI\nschemathesis run -u http://localhost:5000 openapi.yaml\n```\n"
	structure := `- ` + "`requirements/`" + ` - Requirements definitions
- ` + "`abstract_tests/`" + ` - Test specifications
- ` + "`sections/`" + ` - Documentation sections
- ` + "`openapi.yaml`" + ` - HTTP API specification
`
	if cfg.IncludeMessaging {
		structure += "- `asyncapi.yaml` - PubSub specification\n- `custom_amqp_test/` - Validation scripts\n"
		validate = "```bash\n# OpenAPI\nschemathesis run -u http://localhost:5000 openapi.yaml\n\n# AsyncAPI\n./custom_amqp_test/test_asyncapi_amqp.py asyncapi.yaml\n```\n"
	}

	return fmt.Sprintf(`# %s

OGC API - EDR Part 3 Service Profile

## Structure

%s
## Generate PDF

`+"```bash\nmake\n```"+`

## Validate

%s
## Collections

%s`, cfg.ProfileTitle, structure, validate, collections.String())
}

// amqpTestScript checks that the first channel declared in a generated
// AsyncAPI document exists on the broker.
const amqpTestScript = `#!/usr/bin/env python3
import pika
import yaml
import sys

def test_asyncapi_amqp(asyncapi_file):
    with open(asyncapi_file) as f:
        spec = yaml.safe_load(f)

    server = spec['servers']['production']
    host = server['host'].split(':')[0]

    channels = spec['channels']
    channel_name = sorted(channels.keys())[0]
    channel_address = channels[channel_name]['address']

    connection = pika.BlockingConnection(pika.ConnectionParameters(host))
    channel = connection.channel()

    exchange_name = channel_address.split('/#')[0] if '/#' in channel_address else channel_address
    channel.exchange_declare(exchange=exchange_name, exchange_type='topic', passive=True)

    print(f"channel {channel_address} exists")
    connection.close()

if __name__ == '__main__':
    asyncapi_file = sys.argv[1] if len(sys.argv) > 1 else '../asyncapi.yaml'
    test_asyncapi_amqp(asyncapi_file)
`
