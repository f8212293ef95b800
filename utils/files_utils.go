package utils

import (
	"io"
	"os"
)

// EnsureDir creates dir and any missing parents. Calling it on an existing
// directory is a no-op.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func WriteAppend(file, line string) error {
	f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteString(line + "\n"); err != nil {
		return err
	}

	return nil
}

// CopyFile copies src to dst, overwriting dst if it exists. The source's
// modification time is carried over to the copy.
func CopyFile(src, dst string) (int64, error) {
	info, err := os.Stat(src)
	if err != nil {
		return 0, err
	}

	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return 0, err
	}

	written, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		return written, err
	}
	if err := out.Close(); err != nil {
		return written, err
	}

	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return written, err
	}

	return written, nil
}
