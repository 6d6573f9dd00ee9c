package service

import "github.com/spec-kit/interaction-service/internal/domain"

type seedStaff struct {
	Name         string
	EmployeeCode string
}

type seedTag struct {
	Name     string
	Category string
}

var defaultStaffSeed = []seedStaff{
	{Name: "Rahul Sharma", EmployeeCode: "RSO001"},
	{Name: "Priya Patel", EmployeeCode: "RSO002"},
	{Name: "Amit Kumar", EmployeeCode: "RSO003"},
	{Name: "Neha Singh", EmployeeCode: "RSO004"},
}

var defaultTagSeed = []seedTag{
	// Jewelry types
	{Name: "Necklace", Category: "jewelry_type"},
	{Name: "Ring", Category: "jewelry_type"},
	{Name: "Earrings", Category: "jewelry_type"},
	{Name: "Bangles", Category: "jewelry_type"},
	{Name: "Bracelet", Category: "jewelry_type"},
	{Name: "Chain", Category: "jewelry_type"},
	{Name: "Pendant", Category: "jewelry_type"},
	{Name: "Mangalsutra", Category: "jewelry_type"},
	// Occasions
	{Name: "Wedding", Category: "occasion"},
	{Name: "Engagement", Category: "occasion"},
	{Name: "Anniversary", Category: "occasion"},
	{Name: "Birthday", Category: "occasion"},
	{Name: "Festival", Category: "occasion"},
	{Name: "Daily Wear", Category: "occasion"},
	// Services
	{Name: "Repair", Category: "service"},
	{Name: "Resize", Category: "service"},
	{Name: "Exchange", Category: "service"},
	{Name: "Gold Rate Inquiry", Category: "service"},
	{Name: "EMI/Finance", Category: "service"},
	{Name: "Custom Order", Category: "service"},
	// Materials
	{Name: "Gold", Category: "material"},
	{Name: "Diamond", Category: "material"},
	{Name: "Platinum", Category: "material"},
	{Name: "Silver", Category: "material"},
	{Name: "Polki", Category: "material"},
}

func defaultStaffMembers() []domain.StaffMember {
	members := make([]domain.StaffMember, 0, len(defaultStaffSeed))
	for _, entry := range defaultStaffSeed {
		code := entry.EmployeeCode
		members = append(members, domain.StaffMember{
			Name:         entry.Name,
			EmployeeCode: &code,
			Active:       true,
		})
	}
	return members
}

func defaultRequirementTags() []domain.RequirementTag {
	tags := make([]domain.RequirementTag, 0, len(defaultTagSeed))
	for i, entry := range defaultTagSeed {
		category := entry.Category
		tags = append(tags, domain.RequirementTag{
			Name:      entry.Name,
			Category:  &category,
			Active:    true,
			SortOrder: i,
		})
	}
	return tags
}
