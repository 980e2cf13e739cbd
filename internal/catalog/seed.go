package catalog

// Seed returns the full league catalog with derived fields computed:
// 36 auction-pool players plus 4 captains and 4 vice-captains that are
// pre-assigned to their teams.
func Seed() []Player {
	players := []Player{
		{ID: 1, Name: "Abhishek R", Batting: 7, Bowling: 4, Fielding: 7},
		{ID: 2, Name: "Nitin", Batting: 4, Bowling: 0, Fielding: 4},
		{ID: 3, Name: "Kohli", Batting: 9, Bowling: 0, Fielding: 10},
		{ID: 4, Name: "Bramesh", Batting: 4, Bowling: 10, Fielding: 7},
		{ID: 5, Name: "Vivek Sharma", Batting: 7, Bowling: 0, Fielding: 5},
		{ID: 6, Name: "Alok", Batting: 5, Bowling: 5, Fielding: 5},
		{ID: 7, Name: "Yadu", Batting: 9, Bowling: 0, Fielding: 7},
		{ID: 8, Name: "Aravinth", Batting: 0, Bowling: 9, Fielding: 0},
		{ID: 9, Name: "Mehul", Batting: 5, Bowling: 7, Fielding: 2},
		{ID: 10, Name: "Ashish P", Batting: 2, Bowling: 0, Fielding: 6},
		{ID: 11, Name: "Vikash", Batting: 5, Bowling: 5, Fielding: 5},
		{ID: 12, Name: "Sailendra", Batting: 7, Bowling: 4, Fielding: 8},
		{ID: 13, Name: "Vishwash", Batting: 8, Bowling: 4, Fielding: 6},
		{ID: 14, Name: "Rajeev Kumar", Batting: 4, Bowling: 4, Fielding: 4},
		{ID: 15, Name: "Amit", Batting: 4, Bowling: 4, Fielding: 4},
		{ID: 16, Name: "Abhinav", Batting: 4, Bowling: 4, Fielding: 4},
		{ID: 17, Name: "Atul", Batting: 7, Bowling: 9, Fielding: 9},
		{ID: 18, Name: "Dillip", Batting: 7, Bowling: 0, Fielding: 4},
		{ID: 19, Name: "Lamby", Batting: 2, Bowling: 8, Fielding: 5},
		{ID: 20, Name: "Ashish Anand", Batting: 5, Bowling: 0, Fielding: 7},
		{ID: 21, Name: "Aniket Bhat", Batting: 7, Bowling: 7, Fielding: 7},
		{ID: 22, Name: "Harish", Batting: 5, Bowling: 10, Fielding: 5},
		{ID: 23, Name: "Ankit", Batting: 7, Bowling: 0, Fielding: 5},
		{ID: 24, Name: "Sanjeev", Batting: 2, Bowling: 6, Fielding: 5},
		{ID: 25, Name: "Runit", Batting: 4, Bowling: 4, Fielding: 4},
		{ID: 26, Name: "Prashant", Batting: 5, Bowling: 5, Fielding: 5},
		{ID: 27, Name: "Dharmendra", Batting: 5, Bowling: 0, Fielding: 5},
		{ID: 28, Name: "Abhay", Batting: 9, Bowling: 9, Fielding: 9},
		{ID: 29, Name: "Aman", Batting: 5, Bowling: 5, Fielding: 5},
		{ID: 30, Name: "Prakhar", Batting: 5, Bowling: 7, Fielding: 5},
		{ID: 31, Name: "Abhi Agarwal", Batting: 4, Bowling: 0, Fielding: 0},
		{ID: 32, Name: "Rahul", Batting: 4, Bowling: 7, Fielding: 4},
		{ID: 33, Name: "Samit", Batting: 5, Bowling: 0, Fielding: 5},
		{ID: 34, Name: "Kawal", Batting: 7, Bowling: 2, Fielding: 2},
		{ID: 35, Name: "Saumil", Batting: 0, Bowling: 7, Fielding: 0},
		{ID: 36, Name: "Yug", Batting: 2, Bowling: 5, Fielding: 2},

		{ID: 37, Name: "Abhijeet", Batting: 7, Bowling: 6, Fielding: 9, Tag: TagCaptain, Team: "Abhijeet", ForcedRole: RoleAllRounder},
		{ID: 38, Name: "Saurav", Batting: 4, Bowling: 8, Fielding: 5, Tag: TagCaptain, Team: "Saurav", ForcedRole: RoleBowler},
		{ID: 39, Name: "Vishal", Batting: 8, Bowling: 0, Fielding: 7, Tag: TagCaptain, Team: "Vishal", ForcedRole: RoleBatsman},
		{ID: 40, Name: "Pravakar", Batting: 6, Bowling: 10, Fielding: 8, Tag: TagCaptain, Team: "Pravakar", ForcedRole: RoleBowler},

		{ID: 41, Name: "Vivek C", Batting: 7, Bowling: 10, Fielding: 8, Tag: TagViceCaptain, Team: "Abhijeet", ForcedRole: RoleAllRounder},
		{ID: 42, Name: "Shubham", Batting: 10, Bowling: 5, Fielding: 10, Tag: TagViceCaptain, Team: "Saurav", ForcedRole: RoleBatsman},
		{ID: 43, Name: "Aniket (VC)", Batting: 8, Bowling: 9, Fielding: 8, Tag: TagViceCaptain, Team: "Vishal", ForcedRole: RoleAllRounder},
		{ID: 44, Name: "Padam", Batting: 7, Bowling: 10, Fielding: 6, Tag: TagViceCaptain, Team: "Pravakar", ForcedRole: RoleAllRounder},
	}

	for i := range players {
		players[i].Recompute()
	}
	return players
}

// Teams returns the four league team names in draft order.
func Teams() []string {
	return []string{"Abhijeet", "Saurav", "Vishal", "Pravakar"}
}
