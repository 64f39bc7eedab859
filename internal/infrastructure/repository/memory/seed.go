package memory

import "github.com/riskibarqy/paddle-roster/internal/domain/clubdirectory"

// SeedClubDirectory is the static club directory upserted at process start.
func SeedClubDirectory() []clubdirectory.Entry {
	return []clubdirectory.Entry{
		{OfficialName: "Birchwood"},
		{OfficialName: "Bob-O-Link", Aliases: []string{"Bob O Link", "BOL"}},
		{OfficialName: "Briarwood"},
		{OfficialName: "Butterfield"},
		{OfficialName: "Evanston", Aliases: []string{"Evanston Golf Club"}},
		{OfficialName: "Exmoor", Aliases: []string{"Exmoor Country Club"}},
		{OfficialName: "Glen View", Aliases: []string{"Glen View Club", "Glenview"}},
		{OfficialName: "Hinsdale PC", Aliases: []string{"Hinsdale Platform", "Hinsdale"}},
		{OfficialName: "Indian Hill", Aliases: []string{"Indian Hill Club", "IHC"}},
		{OfficialName: "Knollwood", Aliases: []string{"Knollwood Club"}},
		{OfficialName: "Lake Bluff"},
		{OfficialName: "Lake Forest", Aliases: []string{"LF", "Lake Forest Club"}},
		{OfficialName: "LifeSport", Aliases: []string{"LifeSport-Lshire", "Lifesport Lincolnshire"}},
		{OfficialName: "Michigan Shores", Aliases: []string{"Mich Shores"}},
		{OfficialName: "Midt-Bannockburn", Aliases: []string{"Midtown Bannockburn", "Midtown"}},
		{OfficialName: "Northmoor", Aliases: []string{"Northmoor Country Club"}},
		{OfficialName: "Onwentsia", Aliases: []string{"Onwentsia Club"}},
		{OfficialName: "Park Ridge CC", Aliases: []string{"Park Ridge Country Club", "Park Ridge"}},
		{OfficialName: "Ruth Lake", Aliases: []string{"Ruth Lake Country Club"}},
		{OfficialName: "Saddle & Cycle", Aliases: []string{"Saddle and Cycle", "S&C"}},
		{OfficialName: "Skokie", Aliases: []string{"Skokie Country Club"}},
		{OfficialName: "Sunset Ridge", Aliases: []string{"Sunset Ridge Country Club"}},
		{OfficialName: "Tennaqua"},
		{OfficialName: "Valley Lo", Aliases: []string{"Valley-Lo"}},
		{OfficialName: "Westmoreland", Aliases: []string{"Westmoreland Country Club"}},
		{OfficialName: "Wilmette", Aliases: []string{"Wilmette PD", "Wilmette Park District"}},
		{OfficialName: "Winnetka", Aliases: []string{"Winnetka Community House"}},
		{OfficialName: "Winter Club", Aliases: []string{"Winter Club of Lake Forest"}},
	}
}
