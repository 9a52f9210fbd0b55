package cmd

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/platewise/internal/utils"
)

// emit prints v according to the effective output format. Formats the
// caller does not special-case (table, markdown) fall back to the
// supplied text rendering.
func emit(v any, text string) error {
	switch outputFormat() {
	case "json":
		b, err := utils.PrettyJSON(v)
		if err != nil {
			return err
		}
		fmt.Println(string(b))
	case "yaml":
		b, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
		fmt.Print(string(b))
	default:
		fmt.Print(text)
	}
	return nil
}
