package api

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen --config=../../docs/api/oapi-codegen.yaml ../../docs/api/openapi.yaml
