package internal

import (
	"maps"
	"slices"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

func NewResource(config *Config) (*resource.Resource, error) {
	attributes := make([]attribute.KeyValue, 0, len(config.ResourceAttributes)+1)
	attributes = append(attributes, semconv.ServiceName(config.ServiceName))
	for _, key := range slices.Sorted(maps.Keys(config.ResourceAttributes)) {
		attributes = append(attributes, attribute.String(key, config.ResourceAttributes[key]))
	}

	// Schemaless so that merging never conflicts with the default resource schema.
	return resource.Merge(
		resource.Default(),
		resource.NewSchemaless(attributes...),
	)
}
