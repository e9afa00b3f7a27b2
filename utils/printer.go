package utils

import (
	"encoding/json"
	"fmt"
	"io"
)

// PrettyPrint writes input to w as indented JSON.
func PrettyPrint(w io.Writer, input any) error {
	bytes, err := json.MarshalIndent(input, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal: %w", err)
	}
	_, err = fmt.Fprintln(w, string(bytes))
	return err
}
