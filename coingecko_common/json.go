package coingecko_common

import jsoniter "github.com/json-iterator/go"

// json is the codec used for upstream bodies
var json = jsoniter.ConfigCompatibleWithStandardLibrary
