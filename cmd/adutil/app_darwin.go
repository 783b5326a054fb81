// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build darwin

package main

import (
	"os"
	"path/filepath"
)

// noadAssetGlob locates the New Oxford American Dictionary body container
// among the downloaded Dictionary Services assets.
const noadAssetGlob = "/System/Library/AssetsV2/" +
	"com_apple_MobileAsset_DictionaryServices_dictionaryOSX/" +
	"*.asset/AssetData/" +
	"New Oxford American Dictionary.dictionary/" +
	"Contents/Resources/Body.data"

func defaultDictionaryPath() string {
	matches, err := filepath.Glob(noadAssetGlob)
	if err != nil || len(matches) == 0 {
		return ""
	}
	for _, m := range matches {
		if _, err := os.Stat(m); err == nil {
			return m
		}
	}
	return matches[0]
}
