package helper

// OptionalColumn is an optional request field and whether the client sent the key.
type OptionalColumn struct {
	Name string
	Set  bool
}

// Opt marks column as written when f was sent, null included.
func Opt[T any](column string, f PatchField[T]) OptionalColumn {
	return OptionalColumn{Name: column, Set: f.Present}
}

// UpsertColumns lists the required columns plus the optional keys the request carried.
// Omitted optional columns keep their stored value; sent ones are overwritten, null included.
func UpsertColumns(required []string, optional ...OptionalColumn) []string {
	cols := append(make([]string, 0, len(required)+len(optional)), required...)
	for _, o := range optional {
		if o.Set {
			cols = append(cols, o.Name)
		}
	}
	return cols
}

// OrDefault dereferences v, falling back to def.
func OrDefault(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}
