package logging

import "context"

// ModuleKey names the component a log line came from. Nested modules
// are joined with a dot, e.g. "server.reflections".
const ModuleKey = "module"

type fieldsKey struct{}

// ContextWith returns a context whose log lines carry the given pairs in
// addition to whatever the parent context already carried.
func ContextWith(ctx context.Context, args ...any) context.Context {
	if len(args) == 0 {
		return ctx
	}
	prev := contextFields(ctx)
	fields := make([]any, 0, len(prev)+len(args))
	fields = append(fields, prev...)
	fields = append(fields, args...)
	return context.WithValue(ctx, fieldsKey{}, fields)
}

func contextFields(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}
	fields, _ := ctx.Value(fieldsKey{}).([]any)
	return fields
}

// withArgs prepends the context pairs to the call pairs.
func withArgs(ctx context.Context, args []any) []any {
	fields := contextFields(ctx)
	if len(fields) == 0 {
		return args
	}
	out := make([]any, 0, len(fields)+len(args))
	out = append(out, fields...)
	return append(out, args...)
}

// splitModule pulls a "module" pair out of args and joins it onto parent.
func splitModule(parent string, args []any) (string, []any) {
	module := parent
	rest := make([]any, 0, len(args))
	for i := 0; i < len(args); i += 2 {
		if i+1 < len(args) {
			if k, ok := args[i].(string); ok && k == ModuleKey {
				name, _ := args[i+1].(string)
				if name == "" {
					continue
				}
				if module == "" {
					module = name
				} else {
					module = module + "." + name
				}
				continue
			}
			rest = append(rest, args[i], args[i+1])
			continue
		}
		rest = append(rest, args[i])
	}
	return module, rest
}
