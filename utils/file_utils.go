package utils

import (
	"crypto/rsa"
	"errors"
	"io/ioutil"
	"os"
)

// ParseKeyFile loads a wallet key from fPath. With createNewKey set it generates
// a fresh key of the given size and saves it to fPath instead.
func ParseKeyFile(fPath string, createNewKey bool, bits int) (*rsa.PrivateKey, error) {
	if fPath == "" {
		return nil, errors.New("file path is missing")
	}
	if createNewKey {
		userKey, _ := GenerateKeyPair(bits)
		if userKey == nil {
			return nil, errors.New("failed to generate a new key")
		}
		if err := SavePrivateKeyToFile(userKey, fPath); err != nil {
			return nil, err
		}
		return userKey, nil
	}
	return ReadKeyFromFPath(fPath)
}

func SavePrivateKeyToFile(privkey *rsa.PrivateKey, fpath string) error {
	f, err := os.Create(fpath)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Write(PrivateKeyToBytes(privkey))
	return err
}

func ReadKeyFromFPath(fPath string) (*rsa.PrivateKey, error) {
	fileContent, err := ioutil.ReadFile(fPath)
	if err != nil {
		return nil, err
	}
	key := BytesToPrivateKey(fileContent)
	if key == nil {
		return nil, errors.New("file does not contain a PEM encoded RSA key")
	}
	return key, nil
}
