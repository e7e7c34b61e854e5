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
	"cloud.google.com/go/civil"
	"fmt"
	"github.com/pingcap/errors"
	"time"
)

// DateInterval is an immutable closed interval between two calendar dates.
// It contains every date >= First and <= Last, so the interval from 1 Jan
// to 3 Jan holds 3 dates. The contained dates are produced through
// Iterator or Dates; each Iterator call starts an independent session.
// Instances never change after construction and are safe to share.
type DateInterval interface {
	fmt.Stringer
	First() civil.Date
	Last() civil.Date
	Length() int
	Contains(date civil.Date) (bool, error)
	Equals(v interface{}) bool
	HashCode() uint64
	Iterator() *DateIterator
	Dates() []civil.Date
}

type dateInterval struct {
	first  civil.Date
	last   civil.Date
	length int
}

// NewDateInterval builds the closed interval [first, last]. Both bounds
// must be valid calendar dates and first must not be after last.
func NewDateInterval(first civil.Date, last civil.Date) (DateInterval, error) {
	if !first.IsValid() {
		return nil, errors.Annotatef(ErrInvalidDate, "lower bound %s of the interval", first)
	}
	if !last.IsValid() {
		return nil, errors.Annotatef(ErrInvalidDate, "upper bound %s of the interval", last)
	}
	if first.After(last) {
		return nil, errors.Annotatef(ErrBoundsReversed, "lower bound %s, upper bound %s", first, last)
	}

	return &dateInterval{
		first:  first,
		last:   last,
		length: last.DaysSince(first) + 1, // the interval includes 'last'
	}, nil
}

func (d *dateInterval) First() civil.Date {
	return d.first
}

func (d *dateInterval) Last() civil.Date {
	return d.last
}

// Length is the count of dates in the interval, computed once at
// construction. A single-day interval has length 1.
func (d *dateInterval) Length() int {
	return d.length
}

func (d *dateInterval) Contains(date civil.Date) (bool, error) {
	if !date.IsValid() {
		return false, errors.Annotatef(ErrInvalidDate, "date %s tested against %s", date, d)
	}
	return !date.Before(d.first) && !date.After(d.last), nil
}

func (d *dateInterval) Equals(v interface{}) bool {
	if that, ok := v.(*dateInterval); ok {
		return that.first == d.first && that.last == d.last
	}
	return false
}

func (d *dateInterval) HashCode() uint64 {
	return uint64(dayOrdinal(d.first))*31 + uint64(dayOrdinal(d.last))
}

func (d *dateInterval) String() string {
	return fmt.Sprintf("DateInterval{first=%s, last=%s, length=%d}", d.first, d.last, d.length)
}

var epochDay = civil.Date{Year: 1970, Month: time.January, Day: 1}

func dayOrdinal(date civil.Date) int {
	return date.DaysSince(epochDay)
}
