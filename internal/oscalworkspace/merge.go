package oscalworkspace

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"

	"github.com/upbound/oscal/internal/oscalid"
	"github.com/upbound/oscal/internal/oscalmodel"
)

// RefreshRequest optionally asks Merge to run the identity engine
// after the overlay step.
type RefreshRequest struct {
	Requested bool
	Version   oscalid.Version
}

// Merge implements §4.4.2: it verifies the workspace's integrity
// against its manifest, parses the baseline document, overlays each
// edited block fragment onto it, optionally refreshes the root
// identity, and emits the reconstituted document along with a merge
// manifest.
func Merge(fs afero.Fs, workspaceDir string, outputDir string, outputFormat oscalmodel.Format, refresh RefreshRequest) (*MergeManifest, []byte, error) {
	manifestPath := filepath.Join(workspaceDir, "dissect_manifest.yaml")
	manifestBytes, err := afero.ReadFile(fs, manifestPath)
	if err != nil {
		return nil, nil, errf(ErrIO, "read manifest: %v", err)
	}
	var manifest DissectManifest
	if err := yaml.UnmarshalStrict(manifestBytes, &manifest); err != nil {
		return nil, nil, errf(ErrParse, "decode manifest: %v", err)
	}

	backupPath := filepath.Join(workspaceDir, "backup", "backup")
	backupData, err := afero.ReadFile(fs, backupPath)
	if err != nil {
		return nil, nil, errf(ErrIO, "read backup: %v", err)
	}
	sum := sha256.Sum256(backupData)
	actualHash := hex.EncodeToString(sum[:])
	if actualHash != manifest.Hash {
		return nil, nil, errf(ErrIntegrity, "backup hash mismatch: manifest has %s, backup is now %s", manifest.Hash, actualHash)
	}

	envelope, err := oscalmodel.Parse(manifest.Model, backupData, oscalmodel.FormatYAML)
	if err != nil {
		return nil, nil, errf(ErrParse, "parse baseline: %v", err)
	}
	root, err := oscalmodel.Root(manifest.Model, envelope)
	if err != nil {
		return nil, nil, errf(ErrParse, "%v", err)
	}

	baselineEnvelope, err := oscalmodel.Parse(manifest.Model, backupData, oscalmodel.FormatYAML)
	if err != nil {
		return nil, nil, errf(ErrParse, "parse baseline snapshot: %v", err)
	}
	baselineRoot, err := oscalmodel.Root(manifest.Model, baselineEnvelope)
	if err != nil {
		return nil, nil, errf(ErrParse, "%v", err)
	}

	modifiableDir := filepath.Join(workspaceDir, "modifiable")
	for _, block := range manifest.Blocks {
		path := filepath.Join(modifiableDir, block+".yaml")
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return nil, nil, errf(ErrIO, "read block %q: %v", block, err)
		}
		if len(strings.TrimSpace(string(data))) == 0 {
			continue
		}
		value, err := oscalmodel.ParseBlock(manifest.Model, block, data, oscalmodel.FormatYAML)
		if err != nil {
			return nil, nil, errf(ErrParse, "parse block %q: %v", block, err)
		}
		if err := oscalmodel.SetBlock(root, block, value); err != nil {
			return nil, nil, errf(ErrParse, "overlay block %q: %v", block, err)
		}
	}

	if refresh.Requested {
		newRootObj, ok := root.(oscalid.RootObject)
		if !ok {
			return nil, nil, errf(ErrParse, "model %q root does not support identity refresh", manifest.Model)
		}
		baselineRootObj, ok := baselineRoot.(oscalid.RootObject)
		if !ok {
			return nil, nil, errf(ErrParse, "model %q root does not support identity refresh", manifest.Model)
		}
		oscalid.Refresh(newRootObj, baselineRootObj, refresh.Version)
	}

	merged, err := oscalmodel.Emit(envelope, outputFormat)
	if err != nil {
		return nil, nil, errf(ErrIO, "emit merged document: %v", err)
	}

	ext := "yaml"
	if outputFormat == oscalmodel.FormatJSON {
		ext = "json"
	}
	if err := fs.MkdirAll(outputDir, 0o755); err != nil {
		return nil, nil, errf(ErrIO, "create output dir: %v", err)
	}
	outPath := filepath.Join(outputDir, fmt.Sprintf("merged.%s", ext))
	if err := afero.WriteFile(fs, outPath, merged, 0o644); err != nil {
		return nil, nil, errf(ErrIO, "write merged document: %v", err)
	}

	mergedSum := sha256.Sum256(merged)
	mergeManifest := &MergeManifest{
		CreatedAt:           isoUTCTimestamp(time.Now()),
		Rand:                manifest.Rand,
		OutputDir:           outputDir,
		Hash:                hex.EncodeToString(mergedSum[:]),
		DissectWorkspaceRef: manifest,
	}
	mergeManifestBytes, err := oscalmodel.Emit(mergeManifest, oscalmodel.FormatYAML)
	if err != nil {
		return nil, nil, errf(ErrIO, "encode merge manifest: %v", err)
	}
	mergeManifestPath := filepath.Join(outputDir, "merge_manifest.yaml")
	if err := afero.WriteFile(fs, mergeManifestPath, mergeManifestBytes, 0o644); err != nil {
		return nil, nil, errf(ErrIO, "write merge manifest: %v", err)
	}

	return mergeManifest, merged, nil
}
