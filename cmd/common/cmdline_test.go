// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFlagsTakePrecedence(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "replay.toml")
	config := `
corpus = "testdata/corpus"
format = "msgpack"
workers = 4
verify = true
`
	require.NoError(t, os.WriteFile(configFile, []byte(config), 0o644))

	f := NewGlobalFlags()
	require.NoError(t, f.Flagset.Parse([]string{"-workers", "2", "-config", configFile}))
	require.NoError(t, f.loadConfig())
	assert.Equal(t, "testdata/corpus", f.Corpus)
	assert.Equal(t, "msgpack", f.Format)
	assert.Equal(t, 2, f.Workers)
	assert.True(t, f.Verify)
	assert.False(t, f.Debug)
}

func TestLoadConfigMissingFile(t *testing.T) {
	f := NewGlobalFlags()
	require.NoError(t, f.Flagset.Parse([]string{"-config", filepath.Join(t.TempDir(), "missing.toml")}))
	err := f.loadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}
