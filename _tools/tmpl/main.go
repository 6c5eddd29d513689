// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command tmpl expands Go text/template files into generated Go sources.
//
//	go run _tools/tmpl/main.go -data=storage.tmpldata storage.gen.go.tmpl
//
// Every template argument name.go.tmpl is executed with the decoded JSON
// document from -data bound to .In, formatted with gofmt rules and written
// next to it as name.go.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/goccy/go-json"
)

const header = `// Code generated by %s. DO NOT EDIT.

`

var dataPath = flag.String("data", "", "JSON file bound to .In in each template")

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fatalf("no template files specified")
	}

	var in interface{}
	if *dataPath != "" {
		raw, err := os.ReadFile(*dataPath)
		if err != nil {
			fatalf("read data: %v", err)
		}
		if err := json.Unmarshal(raw, &in); err != nil {
			fatalf("decode %s: %v", *dataPath, err)
		}
	}

	for _, path := range flag.Args() {
		if err := generate(path, in); err != nil {
			fatalf("%s: %v", path, err)
		}
	}
}

func generate(path string, in interface{}) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	tmpl, err := template.New(filepath.Base(path)).Parse(string(src))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, header, filepath.Base(path))
	if err := tmpl.Execute(&buf, map[string]interface{}{"In": in}); err != nil {
		return err
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format generated source: %w", err)
	}
	return os.WriteFile(strings.TrimSuffix(path, ".tmpl"), out, 0o644)
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "tmpl: "+format+"\n", args...)
	os.Exit(1)
}
