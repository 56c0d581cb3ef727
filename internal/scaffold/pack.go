package scaffold

import (
	"archive/tar"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/pierrec/lz4"

	"github.com/vktrace/cli/internal/output"
)

// bundleModTime is stamped on every entry so equal inputs give equal bundles.
var bundleModTime = time.Unix(0, 0).UTC()

// Pack writes the selected files to w as an LZ4-compressed tar stream.
// Entries are rooted at the project name.
func Pack(ctx context.Context, w io.Writer, opts Options) (*Result, error) {
	name, err := projectName(opts)
	if err != nil {
		return nil, err
	}

	shims, files, err := plan(opts)
	if err != nil {
		return nil, err
	}

	zw := lz4.NewWriter(w)
	tw := tar.NewWriter(zw)

	result := &Result{ProjectName: name, Shims: shims}
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		mode := int64(0o644)
		if f.desc.Executable() {
			mode = 0o755
		}

		hdr := &tar.Header{
			Typeflag: tar.TypeReg,
			Name:     path.Join(name, f.desc.Path()),
			Mode:     mode,
			Size:     int64(len(f.desc.Content)),
			ModTime:  bundleModTime,
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return nil, fmt.Errorf("writing header for %s: %w", hdr.Name, err)
		}
		if _, err := io.WriteString(tw, f.desc.Content); err != nil {
			return nil, fmt.Errorf("writing %s: %w", hdr.Name, err)
		}

		output.Debug("packed file", "path", hdr.Name)
		result.Files = append(result.Files, FileResult{
			ID:     f.id,
			Path:   f.desc.Path(),
			Set:    f.set,
			Status: output.StatusPacked,
			Size:   len(f.desc.Content),
		})
	}

	if err := tw.Close(); err != nil {
		return nil, fmt.Errorf("closing tar stream: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing lz4 stream: %w", err)
	}

	return result, nil
}

// Unpack extracts a bundle written by Pack into dir and returns the
// slash-separated paths it wrote, relative to dir.
func Unpack(r io.Reader, dir string) ([]string, error) {
	tr := tar.NewReader(lz4.NewReader(r))

	var written []string
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return written, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading bundle: %w", err)
		}

		rel, err := entryPath(hdr.Name)
		if err != nil {
			return nil, err
		}
		target := filepath.Join(dir, filepath.FromSlash(rel))

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return nil, err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return nil, err
			}
			if err := extractFile(tr, target, fs.FileMode(hdr.Mode)&0o755); err != nil {
				return nil, err
			}
			written = append(written, rel)
		default:
			return nil, fmt.Errorf("unsupported bundle entry %s (type %c)", hdr.Name, hdr.Typeflag)
		}
	}
}

func extractFile(r io.Reader, target string, mode fs.FileMode) error {
	f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode|0o600)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return fmt.Errorf("extracting %s: %w", target, err)
	}
	return f.Close()
}

// entryPath rejects entries that would land outside the extraction root.
func entryPath(name string) (string, error) {
	clean := path.Clean(name)
	if path.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../") || strings.Contains(name, `\`) {
		return "", fmt.Errorf("unsafe bundle entry %q", name)
	}
	return clean, nil
}
