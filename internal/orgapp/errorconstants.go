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

import "github.com/asgardeo/orgappmgt/internal/system/error/serviceerror"

// Client errors for organization application management operations.
var (
	// ErrorInvalidApplication is the error returned when an application cannot be shared.
	ErrorInvalidApplication = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ORG-60001",
		Error:            "Invalid application",
		ErrorDescription: "The application %s cannot be shared.",
	}
	// ErrorApplicationNotShared is the error returned when an application that is not shared is unshared.
	ErrorApplicationNotShared = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ORG-60002",
		Error:            "Application not shared",
		ErrorDescription: "The application %s is not shared with any organization.",
	}
	// ErrorUnsupportedRoleSharingMode is the error returned when a role sharing mode is not supported.
	ErrorUnsupportedRoleSharingMode = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ORG-60003",
		Error:            "Unsupported role sharing mode",
		ErrorDescription: "The role sharing mode %s is not supported.",
	}
	// ErrorSystemApplicationSharing is the error returned when a system application is shared.
	ErrorSystemApplicationSharing = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ORG-60004",
		Error:            "System application cannot be shared",
		ErrorDescription: "System applications are not allowed to be shared with child organizations.",
	}
)

// Server errors for organization application management operations.
var (
	// ErrorRetrievingSystemApplications is the error returned when the system applications cannot be retrieved.
	ErrorRetrievingSystemApplications = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "ORG-65001",
		Error:            "Error while retrieving system applications",
		ErrorDescription: "Unable to retrieve the system applications.",
	}
	// ErrorRetrievingDefaultServiceProvider is the error returned when the default service provider
	// cannot be retrieved.
	ErrorRetrievingDefaultServiceProvider = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "ORG-65002",
		Error:            "Error while retrieving default service provider",
		ErrorDescription: "Unable to retrieve the default service provider of tenant %s.",
	}
	// ErrorRetrievingDBTemplate is the error returned when a database client cannot be obtained.
	ErrorRetrievingDBTemplate = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "ORG-65003",
		Error:            "Error while creating the database template",
		ErrorDescription: "Unable to obtain a client for the %s datasource.",
	}
	// ErrorResolvingRoleSharingMode is the error returned when the stored role sharing mode cannot be resolved.
	ErrorResolvingRoleSharingMode = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "ORG-65004",
		Error:            "Error while resolving role sharing mode",
		ErrorDescription: "Unable to resolve the role sharing mode of application %s.",
	}
)
