package auditlog

import "context"

// Metadata describes which account acted, in which role, on which
// resource. Commands attach it to their context and the root command
// copies it into the entry once the command has finished.
type Metadata struct {
	UserID       string
	Role         string
	ResourceType string
	ResourceID   string
	ResourceName string
}

type metadataKey struct{}

// WithMetadata attaches audit metadata to a context. Empty fields keep
// any value already present, so a command can record the account and the
// resource at different points of its run.
func WithMetadata(ctx context.Context, meta Metadata) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	cur, _ := ctx.Value(metadataKey{}).(Metadata)
	keep := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	keep(&cur.UserID, meta.UserID)
	keep(&cur.Role, meta.Role)
	keep(&cur.ResourceType, meta.ResourceType)
	keep(&cur.ResourceID, meta.ResourceID)
	keep(&cur.ResourceName, meta.ResourceName)
	return context.WithValue(ctx, metadataKey{}, cur)
}

// MetadataFromContext returns audit metadata stored in the context.
func MetadataFromContext(ctx context.Context) Metadata {
	if ctx == nil {
		return Metadata{}
	}
	meta, _ := ctx.Value(metadataKey{}).(Metadata)
	return meta
}
