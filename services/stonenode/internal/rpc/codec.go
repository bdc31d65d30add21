package rpc

import (
	stdjson "encoding/json"

	jsoniter "github.com/json-iterator/go"
)

// json replaces encoding/json for all request and response coding in this package.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

type rawMessage = stdjson.RawMessage
