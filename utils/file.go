/*
Velociraptor - Dig Deeper
Copyright (C) 2019-2025 Rapid7 Inc.

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published
by the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package utils

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	errors "github.com/go-errors/errors"
)

// CopyFile copies a file from src to dst. If src and dst files exist,
// and are the same, then return success. Otherise, copy the file
// contents from src to dst.
func CopyFile(src, dst string, mode os.FileMode) (n int64, err error) {
	sfi, err := os.Stat(src)
	if err != nil {
		return 0, errors.Wrap(err, 0)
	}
	if !sfi.Mode().IsRegular() {
		// cannot copy non-regular files (e.g., directories,
		// symlinks, devices, etc.)
		return 0, fmt.Errorf("CopyFile: non-regular source file %s (%q)",
			sfi.Name(), sfi.Mode().String())
	}

	dfi, err := os.Stat(dst)
	if err != nil {
		// File may not exist yet so this is not an error.
		if !os.IsNotExist(err) {
			return 0, errors.Wrap(err, 0)
		}
	} else {
		if !(dfi.Mode().IsRegular()) {
			return 0, fmt.Errorf(
				"CopyFile: non-regular destination file %s (%q)",
				dfi.Name(), dfi.Mode().String())
		}

		// Files are the same - it is not an error but there
		// is nothing else to do.
		if os.SameFile(sfi, dfi) {
			return 0, nil
		}
	}

	in, err := os.Open(src)
	if err != nil {
		return 0, errors.Wrap(err, 0)
	}
	defer in.Close()

	return copyContents(in, dst, mode)
}

// CopyFileFromFS copies a single regular file out of a filesystem
// (e.g. an embedded asset bundle) into dst, replacing dst if it
// exists.
func CopyFileFromFS(src_fs fs.FS, name, dst string, mode os.FileMode) (
	n int64, err error) {
	sfi, err := fs.Stat(src_fs, name)
	if err != nil {
		return 0, errors.Wrap(err, 0)
	}
	if !sfi.Mode().IsRegular() {
		return 0, fmt.Errorf("CopyFileFromFS: non-regular source file %s (%q)",
			name, sfi.Mode().String())
	}

	in, err := src_fs.Open(name)
	if err != nil {
		return 0, errors.Wrap(err, 0)
	}
	defer in.Close()

	return copyContents(in, dst, mode)
}

// CopyTreeFromFS recursively copies the directory root out of src_fs
// into dst. The destination must not exist yet - if it does we return
// AlreadyExistsError without touching it.
func CopyTreeFromFS(src_fs fs.FS, root, dst string) (total int64, err error) {
	_, err = os.Lstat(dst)
	if err == nil {
		return 0, AlreadyExistsError
	}
	if !os.IsNotExist(err) {
		return 0, errors.Wrap(err, 0)
	}

	err = fs.WalkDir(src_fs, root, func(
		name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relative := name[len(root):]
		target := filepath.Join(dst, filepath.FromSlash(path.Clean("/"+relative)))

		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}

		// Skip anything that is not a plain file (e.g. symlinks).
		if !d.Type().IsRegular() {
			return nil
		}

		n, err := CopyFileFromFS(src_fs, name, target, 0644)
		total += n
		return err
	})
	if err != nil {
		return total, errors.Wrap(err, 0)
	}
	return total, nil
}

// copyContents writes everything from in into the file named by
// dst. The file will be created if it does not already exist. If the
// destination file exists, all it's contents will be replaced.
func copyContents(in io.Reader, dst string, mode os.FileMode) (n int64, err error) {
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return 0, errors.Wrap(err, 0)
	}

	defer func() {
		cerr := out.Close()
		if err == nil && cerr != nil {
			err = errors.Wrap(cerr, 0)
		}
	}()

	n, err = io.Copy(out, in)
	if err != nil {
		return n, errors.Wrap(err, 0)
	}

	return n, out.Sync()
}

// AdvisoryRemoveDir removes path only if it is an empty
// directory. Failure (not empty, permission denied, already gone) is
// reported through the return value only and callers are free to
// ignore it.
func AdvisoryRemoveDir(path string) bool {
	fi, err := os.Lstat(path)
	if err != nil || !fi.IsDir() {
		return false
	}

	return os.Remove(path) == nil
}
