package domain

import "time"

// SeedUsers is the fixed demo catalog: one account per role, used by the
// simulated login flows. Seeding skips accounts whose email already
// exists, so applying it twice is harmless.
func SeedUsers() []User {
	created := time.Date(2024, time.March, 12, 9, 0, 0, 0, time.UTC)
	return []User{
		{
			ID:               "seed-company-1",
			Email:            "operations@ironridge.com",
			DisplayName:      "Ironridge Haulage",
			PhoneNumber:      "2025550143",
			BusinessCategory: "Logistics",
			Role:             RoleCompany,
			CreatedAt:        created,
		},
		{
			ID:               "seed-business-1",
			Email:            "hello@bordercraft.com",
			DisplayName:      "Bordercraft Supplies",
			PhoneNumber:      "2025550177",
			BusinessCategory: "Equipment",
			Role:             RoleBusiness,
			CreatedAt:        created,
		},
		{
			ID:               "seed-professional-1",
			Email:            "sarah@mining.com",
			DisplayName:      "Sarah Mitchell",
			PhoneNumber:      "2025550199",
			BusinessCategory: "Mining",
			Role:             RoleProfessional,
			CreatedAt:        created,
		},
	}
}
