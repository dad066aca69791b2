package state

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

const archiveTimeLayout = "2006-01-02-15_04_05"

// Archive compresses the state directory of branch into a timestamped
// tar.gz under archiveRoot and returns the archive path. Entries are
// rooted at the branch name, so extraction yields one directory. The
// live state directory is left in place; callers delete it separately.
func (s *Store) Archive(branch, archiveRoot string) (string, error) {
	dir := s.BranchDir(branch)
	name := time.Now().Format(archiveTimeLayout) + "-" + branch + ".tar.gz"
	path := filepath.Join(archiveRoot, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create archive: %w", err)
	}

	gz := gzip.NewWriter(f)
	tw := tar.NewWriter(gz)

	walkErr := filepath.Walk(dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}

		hdr, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		hdr.Name = filepath.ToSlash(filepath.Join(branch, rel))
		if info.IsDir() {
			hdr.Name += "/"
		}

		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		src, err := os.Open(p)
		if err != nil {
			return err
		}
		defer src.Close()

		_, err = io.Copy(tw, src)
		return err
	})

	if err := tw.Close(); err != nil && walkErr == nil {
		walkErr = err
	}
	if err := gz.Close(); err != nil && walkErr == nil {
		walkErr = err
	}
	if err := f.Close(); err != nil && walkErr == nil {
		walkErr = err
	}

	if walkErr != nil {
		// Leave no partial entry behind
		os.Remove(path)
		return "", fmt.Errorf("failed to archive %s: %w", branch, walkErr)
	}

	return path, nil
}
