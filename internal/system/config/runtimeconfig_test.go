/*
 * Copyright (c) 2026, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type RuntimeConfigTestSuite struct {
	suite.Suite
}

func TestRuntimeConfigSuite(t *testing.T) {
	suite.Run(t, new(RuntimeConfigTestSuite))
}

func (suite *RuntimeConfigTestSuite) TearDownTest() {
	ResetRuntime()
}

func (suite *RuntimeConfigTestSuite) TestInitializeRuntime() {
	cfg := &Config{
		Application: ApplicationConfig{SystemApplications: []string{"Console"}},
	}

	err := InitializeRuntime("/opt/server", cfg)
	assert.NoError(suite.T(), err)

	runtime := GetRuntime()
	assert.Equal(suite.T(), "/opt/server", runtime.Home)
	assert.Equal(suite.T(), []string{"Console"}, runtime.Config.Application.SystemApplications)
}

func (suite *RuntimeConfigTestSuite) TestInitializeRuntimeOnlyOnce() {
	_ = InitializeRuntime("/first", &Config{})
	_ = InitializeRuntime("/second", &Config{})

	assert.Equal(suite.T(), "/first", GetRuntime().Home)
}

func (suite *RuntimeConfigTestSuite) TestGetRuntimePanicsWhenNotInitialized() {
	assert.Panics(suite.T(), func() {
		_ = GetRuntime()
	})
}

func (suite *RuntimeConfigTestSuite) TestResolvePath() {
	runtime := &Runtime{Home: "/opt/server"}

	assert.Equal(suite.T(), "", runtime.ResolvePath(""))
	assert.Equal(suite.T(), "/etc/sp", runtime.ResolvePath("/etc/sp"))
	assert.Equal(suite.T(), filepath.Join("/opt/server", "repository/sp"), runtime.ResolvePath("repository/sp"))
}
