package admin

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen --config=../../docs/api/oapi-codegen-admin.yaml ../../docs/api/admin.yaml
