// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package stdlib

import "os"

// IsFileExists returns true if the path exists and is a regular file.
func IsFileExists(path string) (bool, error) {
	return isFileExists(os.Stat(path))
}

// isFileExists returns true if the path exists and is a regular file.
func isFileExists(sb os.FileInfo, err error) (bool, error) {
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	} else if sb.IsDir() {
		return false, nil
	}
	return sb.Mode().IsRegular(), nil
}
