package oscalfield

import (
	"encoding/json"
	"os"

	"github.com/russross/blackfriday/v2"
)

// MarkupRenderModeEnv is the process-wide environment variable that
// controls whether Markup-kind strings are rendered at parse time.
const MarkupRenderModeEnv = "OSCAL_MARKUP_RENDER_MODE"

const markupRenderModeEnabled = "ENABLED"

// Markup is free-form textual content whose rendering is controlled by
// a single process-wide flag. When the flag is disabled the value
// passes through unchanged; when enabled, it is rendered from its
// lightweight annotation language to its rendered form.
type Markup string

func markupRenderEnabled() bool {
	return os.Getenv(MarkupRenderModeEnv) == markupRenderModeEnabled
}

func renderMarkup(s string) string {
	return string(blackfriday.Run([]byte(s)))
}

func (m Markup) Validate() error {
	return nil
}

func (m *Markup) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if markupRenderEnabled() {
		s = renderMarkup(s)
	}
	*m = Markup(s)
	return nil
}

func (m Markup) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(m))
}
