// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain and per-query row types.

# Domain Types

  - Student: id, name
  - Course: id, title, semester

Both are read-only for this application; an external process populates
them.

# Row Types

One struct per query, tagged for sqlx scanning:

  - GradeRow: grade listing (points ⋈ student ⋈ course)
  - StudentGradeRow: one student's grades (points ⋈ course)
  - CourseAverage: AVG(value) per course title
  - CourseDistribution: A/B/C/F bucket counts per course title

Score buckets:

	A: value >= 90
	B: 75 <= value < 90
	C: 60 <= value < 75
	F: value < 60

The buckets partition the reals, so a grade record lands in exactly one.
*/
package models
