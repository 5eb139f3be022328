package fsutils

import (
	"io"
	"os"
)

// ReadFileData reads up to max bytes from the file at filePath.
// max == 0 reads the whole file, max > 0 reads the first max bytes,
// max < 0 reads the last |max| bytes.
func ReadFileData(filePath string, max int) (data []byte, err error) {
	if max == 0 {
		return os.ReadFile(filePath)
	}

	var file *os.File
	if file, err = os.Open(filePath); err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()

	if max > 0 {
		data = make([]byte, max)
		var n int
		n, err = io.ReadFull(file, data)
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			err = nil
		}
		return data[:n], err
	}

	var info os.FileInfo
	if info, err = file.Stat(); err != nil {
		return nil, err
	}
	tail := int64(-max)
	if tail > info.Size() {
		tail = info.Size()
	}
	if _, err = file.Seek(-tail, io.SeekEnd); err != nil {
		return nil, err
	}
	data = make([]byte, tail)
	_, err = io.ReadFull(file, data)
	return data, err
}
