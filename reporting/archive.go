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
package reporting

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Velocidex/zip"
	"github.com/pkg/errors"
)

// ExportReportToZip packs the finished report under root into a zip
// file. Paths inside the archive are relative to root. If the zip is
// created inside root it is not included in itself.
func ExportReportToZip(root, zip_path string) (err error) {
	root, err = filepath.EvalSymlinks(root)
	if err != nil {
		return errors.WithStack(err)
	}

	fd, err := os.OpenFile(zip_path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return errors.WithStack(err)
	}

	// Resolved the same way as root so the walk can recognize it.
	abs_zip, err := filepath.EvalSymlinks(zip_path)
	if err != nil {
		fd.Close()
		return errors.WithStack(err)
	}
	abs_zip, err = filepath.Abs(abs_zip)
	if err != nil {
		fd.Close()
		return errors.WithStack(err)
	}
	defer func() {
		cerr := fd.Close()
		if err == nil && cerr != nil {
			err = errors.WithStack(cerr)
		}
	}()

	zip_writer := zip.NewWriter(fd)
	defer func() {
		cerr := zip_writer.Close()
		if err == nil && cerr != nil {
			err = errors.WithStack(cerr)
		}
	}()

	return filepath.WalkDir(root, func(
		path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.Type().IsRegular() {
			return nil
		}

		abs_path, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		if abs_path == abs_zip {
			return nil
		}

		relative, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		writer, err := zip_writer.Create(filepath.ToSlash(relative))
		if err != nil {
			return err
		}

		in, err := os.Open(path)
		if err != nil {
			return err
		}
		defer in.Close()

		_, err = io.Copy(writer, in)
		return err
	})
}
