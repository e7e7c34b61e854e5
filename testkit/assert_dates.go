/*
 * Copyright 2021. Go-Interval Author All Rights Reserved.
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 *
 *  File author: Anders Xiao
 */

package testkit

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/emirpasic/gods/utils"
	"github.com/stretchr/testify/assert"
)

// AssertDatesEqual compares two date sequences element by element, in
// order, and fails the test with a rendering of both sequences when
// they differ.
func AssertDatesEqual(t assert.TestingT, excepted []civil.Date, actual []civil.Date, msgAndArgs ...interface{}) bool {
	if len(excepted) != len(actual) {
		return assert.Fail(t, errorDifferent(excepted, actual), msgAndArgs...)
	}

	for i, e := range excepted {
		if actual[i] != e {
			return assert.Fail(t, errorDifferent(excepted, actual), msgAndArgs...)
		}
	}

	return true
}

// AssertEmptyDates asserts that no dates were produced.
func AssertEmptyDates(t assert.TestingT, actual []civil.Date, msgAndArgs ...interface{}) bool {
	return AssertDatesEqual(t, nil, actual, msgAndArgs...)
}

func errorDifferent(excepted []civil.Date, actual []civil.Date) string {
	sb := newStringBuilder()
	sb.WriteLine("date sequence not same")

	sb.Write("excepted: ")
	writeDates(sb, sortedDates(excepted))
	sb.WriteLine()

	sb.Write("actual: ")
	writeDates(sb, sortedDates(actual))
	sb.WriteLine()

	return sb.String()
}

func sortedDates(dates []civil.Date) []interface{} {
	values := make([]interface{}, len(dates))
	for i, d := range dates {
		values[i] = d
	}
	utils.Sort(values, func(a, b interface{}) int {
		return a.(civil.Date).DaysSince(b.(civil.Date))
	})
	return values
}

func writeDates(sb *stringBuilder, dates []interface{}) {
	if len(dates) == 0 {
		sb.Write("<empty sequence>")
		return
	}
	for i, d := range dates {
		if i == (len(dates) - 1) {
			sb.Write(fmt.Sprint(d))
		} else {
			sb.Write(fmt.Sprint(d) + ", ")
		}
	}
}
