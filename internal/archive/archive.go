// Package archive unpacks downloaded artifact archives into instance
// directories. Extraction works on a copy inside the target directory so the
// cached original in softwares/ is never consumed.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/conn-castle/deploy-agent/internal/messages"
)

// ExtractTo unpacks the zip archive at sourcePath into targetDir.
//
// Unless sourcePath already lives in targetDir, the archive is first copied
// there and the copy is deleted after a successful extraction; the original
// archive is never deleted. Entry permission modes are restored where the
// platform supports them. A failed extraction leaves any partially written
// entries in place for inspection; there is no rollback.
func ExtractTo(sourcePath, targetDir string) error {
	fileName := filepath.Base(sourcePath)
	archivePath := filepath.Join(targetDir, fileName)
	sameLocation := filepath.Clean(sourcePath) == filepath.Clean(archivePath)

	if !sameLocation {
		if err := os.MkdirAll(targetDir, 0o755); err != nil {
			return fmt.Errorf(messages.ArchiveCreateDirErrFmt, targetDir, err)
		}
		if err := copyFile(sourcePath, archivePath); err != nil {
			return err
		}
	}

	if err := extract(archivePath); err != nil {
		return err
	}

	if !sameLocation {
		if err := os.Remove(archivePath); err != nil {
			return fmt.Errorf(messages.ArchiveRemoveCopyErrFmt, archivePath, err)
		}
	}
	return nil
}

// extract unpacks the archive into its own directory.
func extract(archivePath string) error {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf(messages.ArchiveOpenErrFmt, archivePath, err)
	}
	defer func() { _ = reader.Close() }()

	parentDir := filepath.Dir(archivePath)
	for _, entry := range reader.File {
		if err := extractEntry(entry, archivePath, parentDir); err != nil {
			return err
		}
	}
	return nil
}

func extractEntry(entry *zip.File, archivePath, parentDir string) error {
	outPath, err := entryPath(entry.Name, archivePath, parentDir)
	if err != nil {
		return err
	}

	if strings.HasSuffix(entry.Name, "/") {
		if err := os.MkdirAll(outPath, 0o755); err != nil {
			return fmt.Errorf(messages.ArchiveCreateDirErrFmt, outPath, err)
		}
		return applyMode(outPath, entry)
	}

	if parent := filepath.Dir(outPath); parent != "." {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return fmt.Errorf(messages.ArchiveCreateDirErrFmt, parent, err)
		}
	}

	src, err := entry.Open()
	if err != nil {
		return fmt.Errorf(messages.ArchiveOpenErrFmt, archivePath, err)
	}
	defer func() { _ = src.Close() }()

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf(messages.ArchiveWriteEntryErrFmt, outPath, err)
	}
	if _, err := io.Copy(out, src); err != nil {
		_ = out.Close()
		return fmt.Errorf(messages.ArchiveWriteEntryErrFmt, outPath, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf(messages.ArchiveWriteEntryErrFmt, outPath, err)
	}
	return applyMode(outPath, entry)
}

// entryPath resolves an archive entry name under parentDir, rejecting names
// that would escape it (absolute paths or parent-directory traversal).
func entryPath(name, archivePath, parentDir string) (string, error) {
	if !filepath.IsLocal(filepath.FromSlash(name)) {
		return "", fmt.Errorf(messages.ArchiveInsecureEntryFmt, archivePath, name)
	}
	return filepath.Join(parentDir, filepath.FromSlash(name)), nil
}

// applyMode restores the permission bits stored for the entry. Platforms
// without POSIX permissions ignore the chmod, which matches the contract of
// applying modes only where available.
func applyMode(path string, entry *zip.File) error {
	perm := entry.Mode().Perm()
	if perm == 0 {
		return nil
	}
	if err := os.Chmod(path, perm); err != nil {
		return fmt.Errorf(messages.ArchiveChmodErrFmt, path, err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf(messages.ArchiveCopyErrFmt, src, dst, err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf(messages.ArchiveCopyErrFmt, src, dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf(messages.ArchiveCopyErrFmt, src, dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf(messages.ArchiveCopyErrFmt, src, dst, err)
	}
	return nil
}
