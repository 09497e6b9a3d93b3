// Package output renders package listings for brew-available.
//
// Two formats are supported:
//   - Text: one "<kind>: <name> (<version>) - <info>" line per package
//   - JSON: a pretty-printed array of package objects
//
// Renderers write the complete listing or nothing; callers should only
// render once every package has been described.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/blackwell-systems/brew-available/internal/available"
)

// Render writes descriptors to w as JSON when asJSON is set, otherwise as
// text lines. The listing is built in memory and written with a single call.
func Render(w io.Writer, descriptors []available.Descriptor, asJSON bool) error {
	var buf bytes.Buffer

	var err error
	if asJSON {
		err = RenderJSON(&buf, descriptors)
	} else {
		err = RenderText(&buf, descriptors)
	}
	if err != nil {
		return err
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write listing: %w", err)
	}
	return nil
}

// RenderJSON writes descriptors as a two-space indented JSON array followed
// by a newline. An empty or nil list renders as [].
func RenderJSON(w io.Writer, descriptors []available.Descriptor) error {
	if descriptors == nil {
		descriptors = []available.Descriptor{}
	}

	data, err := json.MarshalIndent(descriptors, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode listing: %w", err)
	}
	data = append(data, '\n')

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write listing: %w", err)
	}
	return nil
}

// RenderText writes one line per descriptor, in order.
func RenderText(w io.Writer, descriptors []available.Descriptor) error {
	for _, d := range descriptors {
		if _, err := fmt.Fprintln(w, FormatLine(d)); err != nil {
			return fmt.Errorf("failed to write listing: %w", err)
		}
	}
	return nil
}

// FormatLine formats a descriptor as "<kind>: <name> (<version>) - <info>".
func FormatLine(d available.Descriptor) string {
	return fmt.Sprintf("%s: %s (%s) - %s", d.Kind, d.Name, d.Version, d.Info)
}
