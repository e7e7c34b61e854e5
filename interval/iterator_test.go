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

package interval

import (
	"fmt"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/endink/go-interval/testkit"
	"github.com/pingcap/errors"
	"github.com/stretchr/testify/assert"
)

func drain(t *testing.T, it *DateIterator) []civil.Date {
	var dates []civil.Date
	for it.HasNext() {
		d, err := it.Next()
		if !assert.Nil(t, err, fmt.Sprintf("Next failed after %d dates", len(dates))) {
			t.FailNow()
		}
		dates = append(dates, d)
	}
	return dates
}

func TestIteratorYieldsAllDatesInOrder(t *testing.T) {
	in := mustInterval(t, date(2013, time.January, 1), date(2013, time.January, 3))

	it := in.Iterator()
	got := drain(t, it)

	testkit.AssertDatesEqual(t, []civil.Date{
		date(2013, time.January, 1),
		date(2013, time.January, 2),
		date(2013, time.January, 3),
	}, got)

	assert.False(t, it.HasNext())
}

func TestIteratorExhaustion(t *testing.T) {
	in := mustInterval(t, date(2013, time.January, 1), date(2013, time.January, 3))

	it := in.Iterator()
	drain(t, it)

	_, err := it.Next()
	if assert.Error(t, err) {
		assert.Equal(t, ErrIterationExhausted, errors.Cause(err))
		assert.Contains(t, err.Error(), in.String())
	}

	// still exhausted on repeated calls
	_, err = it.Next()
	if assert.Error(t, err) {
		assert.Equal(t, ErrIterationExhausted, errors.Cause(err))
	}
}

func TestIteratorOverSingleDay(t *testing.T) {
	day := date(2013, time.July, 4)
	in := mustInterval(t, day, day)

	it := in.Iterator()
	assert.True(t, it.HasNext())

	got, err := it.Next()
	assert.Nil(t, err)
	assert.Equal(t, day, got)

	assert.False(t, it.HasNext())
	_, err = it.Next()
	if assert.Error(t, err) {
		assert.Equal(t, ErrIterationExhausted, errors.Cause(err))
	}
}

func TestIteratorCrossesMonthBoundary(t *testing.T) {
	in := mustInterval(t, date(2012, time.February, 28), date(2012, time.March, 1))

	testkit.AssertDatesEqual(t, []civil.Date{
		date(2012, time.February, 28),
		date(2012, time.February, 29),
		date(2012, time.March, 1),
	}, drain(t, in.Iterator()))
}

func TestInterleavedIteratorsAreIndependent(t *testing.T) {
	in := mustInterval(t, date(2013, time.January, 1), date(2013, time.January, 3))

	it1 := in.Iterator()
	it2 := in.Iterator()

	var got1, got2 []civil.Date
	for it1.HasNext() || it2.HasNext() {
		if it1.HasNext() {
			d, err := it1.Next()
			assert.Nil(t, err)
			got1 = append(got1, d)
		}
		if it2.HasNext() {
			d, err := it2.Next()
			assert.Nil(t, err)
			got2 = append(got2, d)
		}
		// the second session advancing twice must not move the first
		if it2.HasNext() {
			d, err := it2.Next()
			assert.Nil(t, err)
			got2 = append(got2, d)
		}
	}

	expected := []civil.Date{
		date(2013, time.January, 1),
		date(2013, time.January, 2),
		date(2013, time.January, 3),
	}
	testkit.AssertDatesEqual(t, expected, got1, "first session sequence")
	testkit.AssertDatesEqual(t, expected, got2, "second session sequence")
}

func TestIteratorIsRestartable(t *testing.T) {
	in := mustInterval(t, date(2013, time.January, 1), date(2013, time.January, 3))

	first := drain(t, in.Iterator())
	second := drain(t, in.Iterator())

	testkit.AssertDatesEqual(t, first, second, "a fresh session must replay the full sequence")
}

func TestIteratorRemove(t *testing.T) {
	in := mustInterval(t, date(2013, time.January, 1), date(2013, time.January, 3))

	it := in.Iterator()
	err := it.Remove()
	if assert.Error(t, err) {
		assert.Equal(t, ErrIntervalImmutable, errors.Cause(err))
	}

	// removal attempt leaves the session untouched
	testkit.AssertDatesEqual(t, []civil.Date{
		date(2013, time.January, 1),
		date(2013, time.January, 2),
		date(2013, time.January, 3),
	}, drain(t, it))
}

func TestDatesMatchesIterator(t *testing.T) {
	in := mustInterval(t, date(2013, time.January, 28), date(2013, time.February, 2))

	dates := in.Dates()
	assert.Equal(t, in.Length(), len(dates))
	testkit.AssertDatesEqual(t, drain(t, in.Iterator()), dates)
}
