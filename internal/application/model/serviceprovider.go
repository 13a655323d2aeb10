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

// Package model defines the data structures for the application module.
package model

import "github.com/asgardeo/orgappmgt/internal/system/cmodels"

// ServiceProvider represents a registered application.
type ServiceProvider struct {
	ApplicationID              string                                `json:"application_id,omitempty" yaml:"application_id"`
	Name                       string                                `json:"name" yaml:"name"`
	Description                string                                `json:"description,omitempty" yaml:"description"`
	TenantDomain               string                                `json:"tenant_domain,omitempty" yaml:"tenant_domain"`
	LocalAndOutboundAuthConfig *LocalAndOutboundAuthenticationConfig `json:"local_and_outbound_auth_config,omitempty" yaml:"local_and_outbound_auth_config"`
	// Properties is nil when the application carries no property collection.
	Properties *cmodels.Properties `json:"properties,omitempty" yaml:"properties"`
}

// LocalAndOutboundAuthenticationConfig holds the login configuration of an application.
type LocalAndOutboundAuthenticationConfig struct {
	AuthenticationType                         string               `json:"authentication_type,omitempty" yaml:"authentication_type"`
	AuthenticationSteps                        []AuthenticationStep `json:"authentication_steps,omitempty" yaml:"authentication_steps"`
	SubjectClaimURI                            string               `json:"subject_claim_uri,omitempty" yaml:"subject_claim_uri"`
	UseTenantDomainInLocalSubjectIdentifier    bool                 `json:"use_tenant_domain_in_local_subject_identifier" yaml:"use_tenant_domain_in_local_subject_identifier"`
	UseUserstoreDomainInLocalSubjectIdentifier bool                 `json:"use_userstore_domain_in_local_subject_identifier" yaml:"use_userstore_domain_in_local_subject_identifier"`
	UseUserstoreDomainInRoles                  bool                 `json:"use_userstore_domain_in_roles" yaml:"use_userstore_domain_in_roles"`
	SkipConsent                                bool                 `json:"skip_consent" yaml:"skip_consent"`
	SkipLogoutConsent                          bool                 `json:"skip_logout_consent" yaml:"skip_logout_consent"`
	EnableAuthorization                        bool                 `json:"enable_authorization" yaml:"enable_authorization"`
}

// AuthenticationStep represents a single step of an authentication sequence.
type AuthenticationStep struct {
	StepOrder                  int      `json:"step_order" yaml:"step_order"`
	SubjectStep                bool     `json:"subject_step" yaml:"subject_step"`
	AttributeStep              bool     `json:"attribute_step" yaml:"attribute_step"`
	LocalAuthenticators        []string `json:"local_authenticators,omitempty" yaml:"local_authenticators"`
	FederatedIdentityProviders []string `json:"federated_identity_providers,omitempty" yaml:"federated_identity_providers"`
}
