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

	"github.com/asgardeo/orgappmgt/internal/system/error/serviceerror"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (suite *ErrorsTestSuite) TestHandleClientError() {
	err := HandleClientError(ErrorSystemApplicationSharing)

	require.NotNil(suite.T(), err)
	assert.Equal(suite.T(), ErrorSystemApplicationSharing.Code, err.Code)
	assert.Equal(suite.T(), ErrorSystemApplicationSharing.Error, err.Message)
	assert.Equal(suite.T(), ErrorSystemApplicationSharing.ErrorDescription, err.Description)
	assert.Equal(suite.T(), ErrorSystemApplicationSharing, err.ServiceError())
}

func (suite *ErrorsTestSuite) TestHandleClientErrorKeepsPlaceholders() {
	err := HandleClientError(ErrorInvalidApplication)

	assert.Equal(suite.T(), "The application %s cannot be shared.", err.Description)
}

func (suite *ErrorsTestSuite) TestHandleServerErrorWithoutData() {
	cause := errors.New("connection refused")

	err := HandleServerError(ErrorRetrievingDefaultServiceProvider, cause)

	require.NotNil(suite.T(), err)
	assert.Equal(suite.T(), "ORG-65002", err.Code)
	assert.Equal(suite.T(), "Error while retrieving default service provider", err.Message)
	assert.Equal(suite.T(), "Unable to retrieve the default service provider of tenant %s.", err.Description)
	assert.Same(suite.T(), cause, errors.Unwrap(err))
}

func (suite *ErrorsTestSuite) TestHandleServerErrorWithData() {
	cause := errors.New("timeout")

	err := HandleServerError(ErrorRetrievingDefaultServiceProvider, cause, "carbon.super")

	assert.Equal(suite.T(), "Unable to retrieve the default service provider of tenant carbon.super.",
		err.Description)
	assert.True(suite.T(), errors.Is(err, cause))
	assert.Contains(suite.T(), err.Error(), "timeout")
}

func (suite *ErrorsTestSuite) TestHandleServerErrorWithMultipleData() {
	e := serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "ORG-65999",
		Error:            "Error while sharing application",
		ErrorDescription: "The organization %s is not a child of organization %s.",
	}

	err := HandleServerError(e, nil, "child", "parent")

	assert.Equal(suite.T(), "The organization child is not a child of organization parent.", err.Description)
	assert.Nil(suite.T(), errors.Unwrap(err))
}

func (suite *ErrorsTestSuite) TestServerErrorMatchesWithAs() {
	var wrapped error = HandleServerError(ErrorRetrievingSystemApplications, errors.New("boom"))

	var serverErr *serviceerror.ServerError
	require.True(suite.T(), errors.As(wrapped, &serverErr))
	assert.Equal(suite.T(), serviceerror.ServerErrorType, serverErr.ServiceError().Type)
	assert.Equal(suite.T(), "ORG-65001", serverErr.ServiceError().Code)
}

func (suite *ErrorsTestSuite) TestCatalogTypes() {
	for _, e := range []serviceerror.ServiceError{
		ErrorInvalidApplication, ErrorApplicationNotShared,
		ErrorUnsupportedRoleSharingMode, ErrorSystemApplicationSharing,
	} {
		assert.Equal(suite.T(), serviceerror.ClientErrorType, e.Type, e.Code)
	}
	for _, e := range []serviceerror.ServiceError{
		ErrorRetrievingSystemApplications, ErrorRetrievingDefaultServiceProvider,
		ErrorRetrievingDBTemplate, ErrorResolvingRoleSharingMode,
	} {
		assert.Equal(suite.T(), serviceerror.ServerErrorType, e.Type, e.Code)
	}
}
