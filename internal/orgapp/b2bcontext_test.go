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
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type B2BContextTestSuite struct {
	suite.Suite
}

func TestB2BContextSuite(t *testing.T) {
	suite.Run(t, new(B2BContextTestSuite))
}

func (suite *B2BContextTestSuite) TestUnsetContext() {
	ids, ok := GetB2BApplicationIDs(context.Background())
	assert.False(suite.T(), ok)
	assert.Nil(suite.T(), ids)
}

func (suite *B2BContextTestSuite) TestSetAndGet() {
	ctx := SetB2BApplicationIDs(context.Background(), []string{"app-1", "app-2"})

	ids, ok := GetB2BApplicationIDs(ctx)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), []string{"app-1", "app-2"}, ids)
}

func (suite *B2BContextTestSuite) TestSetEmptyList() {
	ctx := SetB2BApplicationIDs(context.Background(), []string{})

	ids, ok := GetB2BApplicationIDs(ctx)
	assert.True(suite.T(), ok)
	assert.Empty(suite.T(), ids)
}

func (suite *B2BContextTestSuite) TestSetReplacesValue() {
	ctx := SetB2BApplicationIDs(context.Background(), []string{"app-1"})
	ctx = SetB2BApplicationIDs(ctx, []string{"app-2"})

	ids, ok := GetB2BApplicationIDs(ctx)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), []string{"app-2"}, ids)
}

func (suite *B2BContextTestSuite) TestClear() {
	ctx := SetB2BApplicationIDs(context.Background(), []string{"app-1"})
	cleared := ClearB2BApplicationIDs(ctx)

	ids, ok := GetB2BApplicationIDs(cleared)
	assert.False(suite.T(), ok)
	assert.Nil(suite.T(), ids)

	// The parent context keeps its value.
	ids, ok = GetB2BApplicationIDs(ctx)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), []string{"app-1"}, ids)
}

func (suite *B2BContextTestSuite) TestValueIsolatedFromCaller() {
	input := []string{"app-1"}
	ctx := SetB2BApplicationIDs(context.Background(), input)
	input[0] = "changed"

	ids, _ := GetB2BApplicationIDs(ctx)
	assert.Equal(suite.T(), []string{"app-1"}, ids)

	ids[0] = "changed again"
	again, _ := GetB2BApplicationIDs(ctx)
	assert.Equal(suite.T(), []string{"app-1"}, again)
}

func (suite *B2BContextTestSuite) TestIsolationAcrossGoroutines() {
	const workers = 16

	var wg sync.WaitGroup
	results := make([][]string, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ctx := SetB2BApplicationIDs(context.Background(), []string{fmt.Sprintf("app-%d", i)})
			ids, _ := GetB2BApplicationIDs(ctx)
			results[i] = ids
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		assert.Equal(suite.T(), []string{fmt.Sprintf("app-%d", i)}, results[i])
	}

	_, ok := GetB2BApplicationIDs(context.Background())
	assert.False(suite.T(), ok)
}
