package fieldutil

// Project filters input down to the allow-listed fields. An entry is kept
// only if its key appears in allowed and its value is present (non-nil);
// a JSON null is treated as "not submitted", never as "set to null".
// Callers must treat an empty result as a validation failure, not as a
// no-op.
func Project(input map[string]interface{}, allowed []string) map[string]interface{} {
	fields := make(map[string]interface{})
	for key, value := range input {
		if value == nil {
			continue
		}
		for _, field := range allowed {
			if key == field {
				fields[key] = value
				break
			}
		}
	}
	return fields
}
