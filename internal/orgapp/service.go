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

// Package orgapp provides the utilities used by organization application management.
package orgapp

import (
	"errors"
	"strings"

	"github.com/asgardeo/orgappmgt/internal/application"
	appmodel "github.com/asgardeo/orgappmgt/internal/application/model"
	"github.com/asgardeo/orgappmgt/internal/system/constants"
	"github.com/asgardeo/orgappmgt/internal/system/database/client"
	"github.com/asgardeo/orgappmgt/internal/system/database/provider"
	"github.com/asgardeo/orgappmgt/internal/system/log"
)

const loggerComponentNameService = "OrgAppMgtService"

var errMissingCollaborator = errors.New("collaborator is not configured")

// OrgAppMgtServiceInterface defines the organization application management operations that depend
// on the application management and database capabilities.
type OrgAppMgtServiceInterface interface {
	IsSystemApplication(name string) (bool, error)
	GetDefaultAuthenticationConfig() (*appmodel.LocalAndOutboundAuthenticationConfig, error)
	GetNewTemplate() (client.DBClientInterface, error)
}

type orgAppMgtService struct {
	appMgtService application.ApplicationMgtServiceInterface
	dbProvider    provider.DBProviderInterface
}

// NewOrgAppMgtService creates a new organization application management service.
func NewOrgAppMgtService(appMgtService application.ApplicationMgtServiceInterface,
	dbProvider provider.DBProviderInterface) OrgAppMgtServiceInterface {
	return &orgAppMgtService{
		appMgtService: appMgtService,
		dbProvider:    dbProvider,
	}
}

// IsSystemApplication checks whether the given application name is one of the system applications.
// The comparison ignores case. The system applications are read on every call.
func (s *orgAppMgtService) IsSystemApplication(name string) (bool, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if s.appMgtService == nil {
		return false, HandleServerError(ErrorRetrievingSystemApplications, errMissingCollaborator)
	}

	systemApps, err := s.appMgtService.GetSystemApplications()
	if err != nil {
		logger.Error("Failed to retrieve system applications", log.Error(err))
		return false, HandleServerError(ErrorRetrievingSystemApplications, err)
	}

	for _, app := range systemApps {
		if strings.EqualFold(app, name) {
			return true, nil
		}
	}
	return false, nil
}

// GetDefaultAuthenticationConfig returns the authentication configuration of the default service
// provider of the super tenant, or nil when the default service provider does not exist.
func (s *orgAppMgtService) GetDefaultAuthenticationConfig() (
	*appmodel.LocalAndOutboundAuthenticationConfig, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if s.appMgtService == nil {
		return nil, HandleServerError(ErrorRetrievingDefaultServiceProvider, errMissingCollaborator,
			constants.SuperTenantDomainName)
	}

	sp, err := s.appMgtService.GetServiceProvider(DefaultServiceProviderName, constants.SuperTenantDomainName)
	if err != nil {
		logger.Error("Failed to retrieve the default service provider",
			log.String(log.LoggerKeyTenantDomain, constants.SuperTenantDomainName), log.Error(err))
		return nil, HandleServerError(ErrorRetrievingDefaultServiceProvider, err,
			constants.SuperTenantDomainName)
	}
	if sp == nil {
		if logger.IsDebugEnabled() {
			logger.Debug("Default service provider not found",
				log.String(log.LoggerKeyTenantDomain, constants.SuperTenantDomainName))
		}
		return nil, nil
	}

	return sp.LocalAndOutboundAuthConfig, nil
}

// GetNewTemplate returns a database client for the identity datasource.
func (s *orgAppMgtService) GetNewTemplate() (client.DBClientInterface, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if s.dbProvider == nil {
		return nil, HandleServerError(ErrorRetrievingDBTemplate, errMissingCollaborator, constants.IdentityDBName)
	}

	dbClient, err := s.dbProvider.GetDBClient(constants.IdentityDBName)
	if err != nil {
		logger.Error("Failed to obtain the database client", log.String("datasource", constants.IdentityDBName),
			log.Error(err))
		return nil, HandleServerError(ErrorRetrievingDBTemplate, err, constants.IdentityDBName)
	}
	return dbClient, nil
}
