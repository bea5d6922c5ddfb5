// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Domain types

type Student struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type Course struct {
	ID       int64  `db:"id"`
	Title    string `db:"title"`
	Semester string `db:"semester"`
}

// Row types - one struct per query so every scan is shape-checked.

// GradeRow backs the full grade listing: points joined to student and
// course.
type GradeRow struct {
	ID          int64   `db:"id"`
	StudentName string  `db:"student_name"`
	CourseTitle string  `db:"course_title"`
	Value       float64 `db:"value"`
}

// StudentGradeRow backs the per-student detail view: points joined to
// course for a single student.
type StudentGradeRow struct {
	CourseTitle string  `db:"title"`
	Semester    string  `db:"semester"`
	Value       float64 `db:"value"`
	ID          int64   `db:"id"`
}

// CourseAverage is one row of the per-course average report.
type CourseAverage struct {
	Title    string  `db:"title"`
	AvgScore float64 `db:"avg_score"`
}

// CourseDistribution is one row of the A/B/C/F bucket report. The four
// buckets are mutually exclusive and cover every value, so the counts
// always sum to the course's total number of grade records.
type CourseDistribution struct {
	Title  string `db:"title"`
	CountA int    `db:"count_a"`
	CountB int    `db:"count_b"`
	CountC int    `db:"count_c"`
	CountF int    `db:"count_f"`
}
