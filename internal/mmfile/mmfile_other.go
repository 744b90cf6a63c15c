//go:build !unix

package mmfile

import "os"

// Open reads the whole file at path; mapping is only used on unix.
func Open(path string) (*Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Mapping{data: data}, nil
}
