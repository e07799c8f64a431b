package oscalworkspace

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/upbound/oscal/internal/oscalmodel"
)

const instructionText = `This directory is a dissected OSCAL document workspace.

Edit the files under modifiable/ to change the corresponding block of
the source document, then run "merge" against this directory to
reassemble it. Do not edit backup/backup: it is the byte-exact
original and is used to verify this workspace has not been tampered
with.
`

// Dissect implements §4.4.1: it parses sourceData as the declared
// model, expands the block selection, materializes one YAML fragment
// per selected block under <root>/modifiable/, writes a byte-exact
// backup and its SHA-256 hash, and writes the manifest last so its
// presence signals the workspace is ready.
//
// On any failure after the root directory is created, the entire root
// tree is removed before the error is returned.
func Dissect(fs afero.Fs, sourcePath string, sourceData []byte, format oscalmodel.Format, tag oscalmodel.ModelTag, blockTokens []string, outputDir string) (*DissectManifest, error) {
	blocks, err := ExpandBlockSelection(tag, blockTokens)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	rand8 := randomToken8()
	base := filepath.Base(sourcePath)
	dirName := fmt.Sprintf("%s_%s_%s", base, isoUTCTimestamp(now), rand8)
	root := filepath.Join(outputDir, dirName)

	if err := fs.MkdirAll(root, 0o755); err != nil {
		return nil, errf(ErrIO, "create workspace root: %v", err)
	}

	fail := func(kind ErrorKind, format string, args ...any) error {
		_ = fs.RemoveAll(root)
		return errf(kind, format, args...)
	}

	envelope, err := oscalmodel.Parse(tag, sourceData, format)
	if err != nil {
		return nil, fail(ErrParse, "parse source: %v", err)
	}
	rootObj, err := oscalmodel.Root(tag, envelope)
	if err != nil {
		return nil, fail(ErrParse, "%v", err)
	}

	backupDir := filepath.Join(root, "backup")
	modifiableDir := filepath.Join(root, "modifiable")
	if err := fs.MkdirAll(backupDir, 0o755); err != nil {
		return nil, fail(ErrIO, "create backup dir: %v", err)
	}
	if err := fs.MkdirAll(modifiableDir, 0o755); err != nil {
		return nil, fail(ErrIO, "create modifiable dir: %v", err)
	}

	for _, block := range blocks {
		value, err := oscalmodel.GetBlock(rootObj, block)
		if err != nil {
			return nil, fail(ErrParse, "%v", err)
		}
		data, err := oscalmodel.EmitBlock(value, oscalmodel.FormatYAML)
		if err != nil {
			return nil, fail(ErrParse, "emit block %q: %v", block, err)
		}
		path := filepath.Join(modifiableDir, block+".yaml")
		if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
			return nil, fail(ErrIO, "write block %q: %v", block, err)
		}
	}

	backupPath := filepath.Join(backupDir, "backup")
	if err := afero.WriteFile(fs, backupPath, sourceData, 0o644); err != nil {
		return nil, fail(ErrIO, "write backup: %v", err)
	}

	sum := sha256.Sum256(sourceData)
	hash := hex.EncodeToString(sum[:])

	instructionPath := filepath.Join(root, "instruction")
	if err := afero.WriteFile(fs, instructionPath, []byte(instructionText), 0o644); err != nil {
		return nil, fail(ErrIO, "write instruction: %v", err)
	}

	absSource, err := filepath.Abs(sourcePath)
	if err != nil {
		absSource = sourcePath
	}
	absRoot, _ := filepath.Abs(root)
	absBackup, _ := filepath.Abs(backupDir)
	absModifiable, _ := filepath.Abs(modifiableDir)

	manifest := &DissectManifest{
		CreatedAt:  isoUTCTimestamp(now),
		ModelLoc:   absSource,
		Model:      tag,
		Blocks:     blocks,
		Rand:       rand8,
		Root:       absRoot,
		Backup:     absBackup,
		Modifiable: absModifiable,
		Hash:       hash,
	}

	manifestBytes, err := oscalmodel.Emit(manifest, oscalmodel.FormatYAML)
	if err != nil {
		return nil, fail(ErrIO, "encode manifest: %v", err)
	}
	manifestPath := filepath.Join(root, "dissect_manifest.yaml")
	if err := afero.WriteFile(fs, manifestPath, manifestBytes, 0o644); err != nil {
		return nil, fail(ErrIO, "write manifest: %v", err)
	}

	return manifest, nil
}
