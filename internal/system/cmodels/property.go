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

// Package cmodels provides common data models used across the organization application management modules.
package cmodels

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// Property represents a generic name/value property.
type Property struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Properties is an ordered set of properties keyed by the exact property name.
// Entries keep their insertion order; updating an existing entry keeps its position.
// The zero value is ready to use.
type Properties struct {
	entries []Property
	index   map[string]int
}

// NewProperties creates a property set from the given properties. A later property
// with the same name overwrites the value of an earlier one.
func NewProperties(properties ...Property) *Properties {
	p := &Properties{}
	for _, property := range properties {
		p.Set(property.Name, property.Value)
	}
	return p
}

// Set inserts the property or updates its value when a property with the same name exists.
func (p *Properties) Set(name, value string) {
	if p.index == nil {
		p.index = make(map[string]int, len(p.entries))
	}
	if i, ok := p.index[name]; ok {
		p.entries[i].Value = value
		return
	}
	p.index[name] = len(p.entries)
	p.entries = append(p.entries, Property{Name: name, Value: value})
}

// Get returns the value of the property with the exact given name.
func (p *Properties) Get(name string) (string, bool) {
	if p == nil {
		return "", false
	}
	i, ok := p.index[name]
	if !ok {
		return "", false
	}
	return p.entries[i].Value, true
}

// GetFold returns the value of the first property whose name matches the given name ignoring case.
func (p *Properties) GetFold(name string) (string, bool) {
	if p == nil {
		return "", false
	}
	if value, ok := p.Get(name); ok {
		return value, true
	}
	for _, entry := range p.entries {
		if strings.EqualFold(entry.Name, name) {
			return entry.Value, true
		}
	}
	return "", false
}

// Has reports whether a property with the exact given name exists.
func (p *Properties) Has(name string) bool {
	_, ok := p.Get(name)
	return ok
}

// HasFold reports whether a property with the given name exists, ignoring case.
func (p *Properties) HasFold(name string) bool {
	_, ok := p.GetFold(name)
	return ok
}

// Remove deletes the property with the exact given name and reports whether it existed.
// The remaining properties keep their relative order.
func (p *Properties) Remove(name string) bool {
	if p == nil {
		return false
	}
	i, ok := p.index[name]
	if !ok {
		return false
	}
	p.entries = append(p.entries[:i], p.entries[i+1:]...)
	delete(p.index, name)
	for j := i; j < len(p.entries); j++ {
		p.index[p.entries[j].Name] = j
	}
	return true
}

// Len returns the number of properties.
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.entries)
}

// List returns a copy of the properties in order.
func (p *Properties) List() []Property {
	if p == nil {
		return nil
	}
	list := make([]Property, len(p.entries))
	copy(list, p.entries)
	return list
}

// Clone returns a deep copy of the property set.
func (p *Properties) Clone() *Properties {
	if p == nil {
		return nil
	}
	return NewProperties(p.entries...)
}

// MarshalJSON encodes the properties as an ordered list.
func (p *Properties) MarshalJSON() ([]byte, error) {
	list := p.List()
	if list == nil {
		list = []Property{}
	}
	return json.Marshal(list)
}

// UnmarshalJSON decodes the properties from a list.
func (p *Properties) UnmarshalJSON(data []byte) error {
	var list []Property
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*p = *NewProperties(list...)
	return nil
}

// MarshalYAML encodes the properties as an ordered list.
func (p *Properties) MarshalYAML() (interface{}, error) {
	list := p.List()
	if list == nil {
		list = []Property{}
	}
	return list, nil
}

// UnmarshalYAML decodes the properties from a list node.
func (p *Properties) UnmarshalYAML(value *yaml.Node) error {
	var list []Property
	if err := value.Decode(&list); err != nil {
		return err
	}
	*p = *NewProperties(list...)
	return nil
}
