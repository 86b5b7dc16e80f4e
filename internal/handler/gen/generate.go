// Package gen contains the types and chi router generated from spec/openapi.yaml.
// Do not edit api.gen.go by hand; edit spec/openapi.yaml and run go generate.
package gen

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 --config cfg.yaml ../../../spec/openapi.yaml
