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

package orgapp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	appmodel "github.com/asgardeo/orgappmgt/internal/application/model"
	"github.com/asgardeo/orgappmgt/internal/system/database/client"
	"github.com/asgardeo/orgappmgt/internal/system/error/serviceerror"
	"github.com/asgardeo/orgappmgt/tests/mocks/applicationmock"
	"github.com/asgardeo/orgappmgt/tests/mocks/databasemock"
)

type OrgAppMgtServiceTestSuite struct {
	suite.Suite
	appMgtService *applicationmock.MockApplicationMgtService
	dbProvider    *databasemock.MockDBProvider
	service       OrgAppMgtServiceInterface
}

func TestOrgAppMgtServiceSuite(t *testing.T) {
	suite.Run(t, new(OrgAppMgtServiceTestSuite))
}

func (suite *OrgAppMgtServiceTestSuite) SetupTest() {
	suite.appMgtService = &applicationmock.MockApplicationMgtService{}
	suite.dbProvider = &databasemock.MockDBProvider{}
	suite.service = NewOrgAppMgtService(suite.appMgtService, suite.dbProvider)
}

func (suite *OrgAppMgtServiceTestSuite) TestIsSystemApplication() {
	suite.appMgtService.MockGetSystemApplications = func() ([]string, error) {
		return []string{"Console", "My Account"}, nil
	}

	testCases := []struct {
		name     string
		app      string
		expected bool
	}{
		{"ExactMatch", "Console", true},
		{"DifferentCase", "console", true},
		{"WithSpace", "MY ACCOUNT", true},
		{"NotSystem", "Pet Store", false},
		{"Empty", "", false},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			isSystem, err := suite.service.IsSystemApplication(tc.app)
			assert.NoError(suite.T(), err)
			assert.Equal(suite.T(), tc.expected, isSystem)
		})
	}
}

func (suite *OrgAppMgtServiceTestSuite) TestIsSystemApplicationNilSet() {
	isSystem, err := suite.service.IsSystemApplication("Console")

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), isSystem)
}

func (suite *OrgAppMgtServiceTestSuite) TestIsSystemApplicationReadsEveryCall() {
	apps := []string{"Console"}
	suite.appMgtService.MockGetSystemApplications = func() ([]string, error) {
		return apps, nil
	}

	isSystem, _ := suite.service.IsSystemApplication("Console")
	assert.True(suite.T(), isSystem)

	apps = nil
	isSystem, _ = suite.service.IsSystemApplication("Console")
	assert.False(suite.T(), isSystem)
	assert.Equal(suite.T(), 2, suite.appMgtService.GetSystemApplicationsCalls())
}

func (suite *OrgAppMgtServiceTestSuite) TestIsSystemApplicationFailure() {
	cause := errors.New("config unavailable")
	suite.appMgtService.MockGetSystemApplications = func() ([]string, error) {
		return nil, cause
	}

	isSystem, err := suite.service.IsSystemApplication("Console")

	assert.False(suite.T(), isSystem)
	var serverErr *serviceerror.ServerError
	require.True(suite.T(), errors.As(err, &serverErr))
	assert.Equal(suite.T(), ErrorRetrievingSystemApplications.Code, serverErr.Code)
	assert.True(suite.T(), errors.Is(err, cause))
}

func (suite *OrgAppMgtServiceTestSuite) TestGetDefaultAuthenticationConfig() {
	authConfig := &appmodel.LocalAndOutboundAuthenticationConfig{
		AuthenticationType: "default",
		AuthenticationSteps: []appmodel.AuthenticationStep{
			{
				StepOrder:           1,
				SubjectStep:         true,
				AttributeStep:       true,
				LocalAuthenticators: []string{"BasicAuthenticator"},
			},
		},
	}
	suite.appMgtService.MockGetServiceProvider = func(name, tenantDomain string) (*appmodel.ServiceProvider, error) {
		return &appmodel.ServiceProvider{
			Name:                       name,
			TenantDomain:               tenantDomain,
			LocalAndOutboundAuthConfig: authConfig,
		}, nil
	}

	result, err := suite.service.GetDefaultAuthenticationConfig()

	assert.NoError(suite.T(), err)
	assert.Same(suite.T(), authConfig, result)
	assert.Equal(suite.T(), []applicationmock.ServiceProviderLookup{
		{Name: "default", TenantDomain: "carbon.super"},
	}, suite.appMgtService.GetServiceProviderCalls())
}

func (suite *OrgAppMgtServiceTestSuite) TestGetDefaultAuthenticationConfigNotFound() {
	result, err := suite.service.GetDefaultAuthenticationConfig()

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), result)
}

func (suite *OrgAppMgtServiceTestSuite) TestGetDefaultAuthenticationConfigWithoutAuthConfig() {
	suite.appMgtService.MockGetServiceProvider = func(name, tenantDomain string) (*appmodel.ServiceProvider, error) {
		return &appmodel.ServiceProvider{Name: name}, nil
	}

	result, err := suite.service.GetDefaultAuthenticationConfig()

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), result)
}

func (suite *OrgAppMgtServiceTestSuite) TestGetDefaultAuthenticationConfigFailure() {
	cause := errors.New("lookup failed")
	suite.appMgtService.MockGetServiceProvider = func(name, tenantDomain string) (*appmodel.ServiceProvider, error) {
		return nil, cause
	}

	result, err := suite.service.GetDefaultAuthenticationConfig()

	assert.Nil(suite.T(), result)
	var serverErr *serviceerror.ServerError
	require.True(suite.T(), errors.As(err, &serverErr))
	assert.Equal(suite.T(), "Error while retrieving default service provider", serverErr.Message)
	assert.Equal(suite.T(), "Unable to retrieve the default service provider of tenant carbon.super.",
		serverErr.Description)
	assert.Same(suite.T(), cause, serverErr.Cause)
}

func (suite *OrgAppMgtServiceTestSuite) TestGetNewTemplate() {
	dbClient := &databasemock.MockDBClient{}
	suite.dbProvider.MockGetDBClient = func(dbName string) (client.DBClientInterface, error) {
		return dbClient, nil
	}

	result, err := suite.service.GetNewTemplate()

	assert.NoError(suite.T(), err)
	assert.Same(suite.T(), dbClient, result)
	assert.Equal(suite.T(), []string{"identity"}, suite.dbProvider.GetDBClientCalls())
}

func (suite *OrgAppMgtServiceTestSuite) TestGetNewTemplateFailure() {
	cause := errors.New("unsupported database type")
	suite.dbProvider.MockGetDBClient = func(dbName string) (client.DBClientInterface, error) {
		return nil, cause
	}

	result, err := suite.service.GetNewTemplate()

	assert.Nil(suite.T(), result)
	var serverErr *serviceerror.ServerError
	require.True(suite.T(), errors.As(err, &serverErr))
	assert.Equal(suite.T(), ErrorRetrievingDBTemplate.Code, serverErr.Code)
	assert.Equal(suite.T(), "Unable to obtain a client for the identity datasource.", serverErr.Description)
	assert.True(suite.T(), errors.Is(err, cause))
}

func (suite *OrgAppMgtServiceTestSuite) TestMissingCollaborators() {
	service := NewOrgAppMgtService(nil, nil)

	_, err := service.IsSystemApplication("Console")
	assert.Error(suite.T(), err)

	_, err = service.GetDefaultAuthenticationConfig()
	assert.Error(suite.T(), err)

	_, err = service.GetNewTemplate()
	assert.Error(suite.T(), err)
}
