package mover

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// copyFile copies src to dst, creating or truncating dst.
func copyFile(src, dst string) (n int64, err error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, errors.Wrap(err, "file error")
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return 0, errors.Wrap(err, "file error")
	}
	defer func() {
		// set the return value in case of close error
		if e := out.Close(); e != nil && err == nil {
			err = e
		}
	}()
	return io.Copy(out, in)
}

func exists(name string) bool {
	_, err := os.Stat(name)
	return !os.IsNotExist(err)
}

func isRegular(name string) bool {
	info, err := os.Stat(name)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

func isDir(name string) bool {
	info, err := os.Stat(name)
	if err != nil {
		return false
	}
	return info.IsDir()
}
