package oscalworkspace

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/upbound/oscal/internal/oscalmodel"
)

// DissectManifest is the structured record written to
// dissect_manifest.yaml once a workspace is fully materialized.
type DissectManifest struct {
	CreatedAt  string              `json:"created_at"`
	ModelLoc   string              `json:"model_loc"`
	Model      oscalmodel.ModelTag `json:"model"`
	Blocks     []string            `json:"blocks"`
	Rand       string              `json:"rand"`
	Root       string              `json:"root"`
	Backup     string              `json:"backup"`
	Modifiable string              `json:"modifiable"`
	Hash       string              `json:"hash"`
}

// MergeManifest is the structured record written to
// merge_manifest.yaml once a merge completes.
type MergeManifest struct {
	CreatedAt           string          `json:"created_at"`
	Rand                string          `json:"rand"`
	OutputDir           string          `json:"output_dir"`
	Hash                string          `json:"hash"`
	DissectWorkspaceRef DissectManifest `json:"dissect_workspace_ref"`
}

// isoUTCTimestamp renders now in ISO-8601 UTC with spaces replaced by
// underscores, per §4.4.1's root-directory naming rule.
func isoUTCTimestamp(now time.Time) string {
	s := now.UTC().Format("2006-01-02T15:04:05Z")
	return strings.ReplaceAll(s, " ", "_")
}

const randAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// randomToken8 returns an 8-character alphanumeric random token used
// both to disambiguate a dissect root directory name and to identify
// its manifest.
func randomToken8() string {
	b := make([]byte, 8)
	for i := range b {
		b[i] = randAlphabet[rand.IntN(len(randAlphabet))]
	}
	return string(b)
}
