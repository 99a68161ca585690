package providers

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

type CommonProvider struct {
	filename string
}

func newCommonProvider(dir string, dataName string) *CommonProvider {

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		logrus.Infoln("Creation a new directory for storage")

		err = os.MkdirAll(dir, os.ModePerm)

		if err != nil {
			panic(err)
		}
	}

	return &CommonProvider{filename: filepath.Join(dir, dataName+".json")}
}

func (c *CommonProvider) getAllDataFromStorage() ([]byte, error) {
	return os.ReadFile(c.filename)
}

// saveAllDataToStorage replaces the whole file through a temp-file rename,
// so a concurrent reader never observes a torn table.
func (c *CommonProvider) saveAllDataToStorage(data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(c.filename), filepath.Base(c.filename)+".tmp-*")

	if err != nil {
		return err
	}

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}

	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), c.filename)
}
