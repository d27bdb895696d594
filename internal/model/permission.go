package model

import (
	"strings"
	"unicode"
)

// Permission represents a string code for a specific system action.
type Permission string

// Category groups related permissions for display and bulk selection.
type Category string

const (
	CategoryDashboard  Category = "Dashboard"
	CategoryUsers      Category = "Users"
	CategoryStudents   Category = "Students"
	CategoryTeachers   Category = "Teachers"
	CategoryClassrooms Category = "Classrooms"
	CategorySubjects   Category = "Subjects"
	CategoryTimetable  Category = "Timetable"
	CategoryExams      Category = "Exams"
	CategoryResults    Category = "Results"
	CategoryAttendance Category = "Attendance"
	CategoryFees       Category = "Fees"
	CategoryPayments   Category = "Payments"
	CategoryExpenses   Category = "Expenses"
	CategoryIssues     Category = "Issues"
	CategoryRoles      Category = "Roles"
	CategorySettings   Category = "Settings"
	CategoryReports    Category = "Reports"
)

const (
	// PermissionViewDashboard allows viewing the school dashboard.
	PermissionViewDashboard Permission = "view_dashboard"

	// PermissionViewUsers allows viewing staff user lists and details.
	PermissionViewUsers Permission = "view_users"

	// PermissionManageUsers allows creating, updating, and deleting staff users.
	PermissionManageUsers Permission = "manage_users"

	// PermissionViewStudents allows viewing student lists and details.
	PermissionViewStudents Permission = "view_students"

	// PermissionManageStudents allows creating, updating, and deleting students.
	PermissionManageStudents Permission = "manage_students"

	// PermissionExportStudents allows exporting student data.
	PermissionExportStudents Permission = "export_students"

	// PermissionViewTeachers allows viewing teacher lists and details.
	PermissionViewTeachers Permission = "view_teachers"

	// PermissionManageTeachers allows creating, updating, and deleting teachers.
	PermissionManageTeachers Permission = "manage_teachers"

	// PermissionViewClassrooms allows viewing classrooms.
	PermissionViewClassrooms Permission = "view_classrooms"

	// PermissionManageClassrooms allows creating, updating, and deleting classrooms.
	PermissionManageClassrooms Permission = "manage_classrooms"

	// PermissionViewSubjects allows viewing subjects.
	PermissionViewSubjects Permission = "view_subjects"

	// PermissionManageSubjects allows creating, updating, and deleting subjects.
	PermissionManageSubjects Permission = "manage_subjects"

	// PermissionViewTimetable allows viewing the timetable.
	PermissionViewTimetable Permission = "view_timetable"

	// PermissionManageTimetable allows editing the timetable.
	PermissionManageTimetable Permission = "manage_timetable"

	// PermissionViewExams allows viewing exam schedules.
	PermissionViewExams Permission = "view_exams"

	// PermissionManageExams allows creating, updating, and deleting exams.
	PermissionManageExams Permission = "manage_exams"

	// PermissionViewResults allows viewing exam results.
	PermissionViewResults Permission = "view_results"

	// PermissionManageResults allows entering and correcting exam results.
	PermissionManageResults Permission = "manage_results"

	// PermissionPublishResults allows publishing results to students.
	PermissionPublishResults Permission = "publish_results"

	// PermissionViewAttendance allows viewing attendance records.
	PermissionViewAttendance Permission = "view_attendance"

	// PermissionRecordAttendance allows recording daily attendance.
	PermissionRecordAttendance Permission = "record_attendance"

	// PermissionViewFees allows viewing fee structures and balances.
	PermissionViewFees Permission = "view_fees"

	// PermissionManageFees allows creating and updating fee structures.
	PermissionManageFees Permission = "manage_fees"

	// PermissionViewPayments allows viewing payment history.
	PermissionViewPayments Permission = "view_payments"

	// PermissionRecordPayments allows recording fee payments.
	PermissionRecordPayments Permission = "record_payments"

	// PermissionViewExpenses allows viewing school expenses.
	PermissionViewExpenses Permission = "view_expenses"

	// PermissionManageExpenses allows recording and editing expenses.
	PermissionManageExpenses Permission = "manage_expenses"

	// PermissionViewIssues allows viewing reported issues.
	PermissionViewIssues Permission = "view_issues"

	// PermissionManageIssues allows resolving and closing issues.
	PermissionManageIssues Permission = "manage_issues"

	// PermissionViewRoles allows viewing roles and the permission catalog.
	PermissionViewRoles Permission = "view_roles"

	// PermissionManageRoles allows creating, updating, and deleting roles.
	PermissionManageRoles Permission = "manage_roles"

	// PermissionViewSettings allows viewing application settings.
	PermissionViewSettings Permission = "view_settings"

	// PermissionManageSettings allows editing application settings.
	PermissionManageSettings Permission = "manage_settings"

	// PermissionViewReports allows viewing aggregate reports.
	PermissionViewReports Permission = "view_reports"

	// PermissionExportReports allows exporting reports.
	PermissionExportReports Permission = "export_reports"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryDashboard,
	CategoryUsers,
	CategoryStudents,
	CategoryTeachers,
	CategoryClassrooms,
	CategorySubjects,
	CategoryTimetable,
	CategoryExams,
	CategoryResults,
	CategoryAttendance,
	CategoryFees,
	CategoryPayments,
	CategoryExpenses,
	CategoryIssues,
	CategoryRoles,
	CategorySettings,
	CategoryReports,
}

// catalog maps each category to its permissions in display order.
// It is the single source of truth for the permission taxonomy:
// populated at build time, never mutated at runtime.
var catalog = map[Category][]Permission{
	CategoryDashboard:  {PermissionViewDashboard},
	CategoryUsers:      {PermissionViewUsers, PermissionManageUsers},
	CategoryStudents:   {PermissionViewStudents, PermissionManageStudents, PermissionExportStudents},
	CategoryTeachers:   {PermissionViewTeachers, PermissionManageTeachers},
	CategoryClassrooms: {PermissionViewClassrooms, PermissionManageClassrooms},
	CategorySubjects:   {PermissionViewSubjects, PermissionManageSubjects},
	CategoryTimetable:  {PermissionViewTimetable, PermissionManageTimetable},
	CategoryExams:      {PermissionViewExams, PermissionManageExams},
	CategoryResults:    {PermissionViewResults, PermissionManageResults, PermissionPublishResults},
	CategoryAttendance: {PermissionViewAttendance, PermissionRecordAttendance},
	CategoryFees:       {PermissionViewFees, PermissionManageFees},
	CategoryPayments:   {PermissionViewPayments, PermissionRecordPayments},
	CategoryExpenses:   {PermissionViewExpenses, PermissionManageExpenses},
	CategoryIssues:     {PermissionViewIssues, PermissionManageIssues},
	CategoryRoles:      {PermissionViewRoles, PermissionManageRoles},
	CategorySettings:   {PermissionViewSettings, PermissionManageSettings},
	CategoryReports:    {PermissionViewReports, PermissionExportReports},
}

// AllPermissions is the full ordered list of permissions, category by category.
var AllPermissions = buildAllPermissions()

var permissionCategory = buildPermissionCategory()

func buildAllPermissions() []Permission {
	var all []Permission
	for _, cat := range Categories {
		all = append(all, catalog[cat]...)
	}
	return all
}

func buildPermissionCategory() map[Permission]Category {
	m := make(map[Permission]Category, len(AllPermissions))
	for cat, perms := range catalog {
		for _, p := range perms {
			m[p] = cat
		}
	}
	return m
}

// PermissionsByCategory returns the ordered permissions of a category.
// Returns nil for an unknown category.
func PermissionsByCategory(cat Category) []Permission {
	return catalog[cat]
}

// IsKnownPermission reports whether code is part of the catalog.
func IsKnownPermission(code Permission) bool {
	_, ok := permissionCategory[code]
	return ok
}

// CategoryOf returns the category a permission belongs to.
func CategoryOf(code Permission) (Category, bool) {
	cat, ok := permissionCategory[code]
	return cat, ok
}

// Label derives the human-readable name from the permission code:
// underscore-delimited tokens are capitalized and joined with spaces,
// e.g. "manage_fees" becomes "Manage Fees".
func (p Permission) Label() string {
	tokens := strings.Split(string(p), "_")
	for i, t := range tokens {
		if t == "" {
			continue
		}
		r := []rune(t)
		r[0] = unicode.ToUpper(r[0])
		tokens[i] = string(r)
	}
	return strings.Join(tokens, " ")
}
