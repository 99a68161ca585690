package exceptions

import "errors"

var NotFound = errors.New("NotFound")
var InternalError = errors.New("InternalError")
var SessionDesync = errors.New("SessionDesync")
var StorageWrite = errors.New("StorageWrite")
