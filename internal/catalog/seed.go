package catalog

import "movie-catalog/internal/domain"

// seedDrafts is the built-in catalog used when the store is empty or
// unreadable. Identity and creation time are assigned at seed time.
var seedDrafts = []domain.Draft{
	{
		Title:       "The Matrix",
		Genre:       "sci-fi",
		Director:    "The Wachowskis",
		Year:        1999,
		Rating:      8.7,
		Description: "A hacker discovers reality is a simulation and joins the rebellion against its machine overlords.",
		ImageURL:    "https://image.tmdb.org/t/p/w500/f89U3ADr1oiB1s9GkdPOEpXUk5H.jpg",
	},
	{
		Title:       "The Godfather",
		Genre:       "crime",
		Director:    "Francis Ford Coppola",
		Year:        1972,
		Rating:      9.2,
		Description: "The aging patriarch of an organized crime dynasty transfers control to his reluctant son.",
		ImageURL:    "https://image.tmdb.org/t/p/w500/3bhkrj58Vtu7enYsRolD1fZdja1.jpg",
	},
	{
		Title:       "Spirited Away",
		Genre:       "animation",
		Director:    "Hayao Miyazaki",
		Year:        2001,
		Rating:      8.6,
		Description: "A young girl wanders into a world of spirits and must work in a bathhouse to free her parents.",
		ImageURL:    "https://image.tmdb.org/t/p/w500/39wmItIWsg5sZMyRUHLkWBcuVCM.jpg",
	},
	{
		Title:       "Mad Max: Fury Road",
		Genre:       "action",
		Director:    "George Miller",
		Year:        2015,
		Rating:      8.1,
		Description: "In a post-apocalyptic wasteland, a drifter and a rebel warrior flee a tyrant in an armored war rig.",
		ImageURL:    "https://image.tmdb.org/t/p/w500/hA2ple9q4qnwxp3hKVNhroipsir.jpg",
	},
	{
		Title:       "Parasite",
		Genre:       "thriller",
		Director:    "Bong Joon-ho",
		Year:        2019,
		Rating:      8.5,
		Description: "A poor family schemes its way into the employment of a wealthy household, with escalating consequences.",
		ImageURL:    "https://image.tmdb.org/t/p/w500/7IiTTgloJzvGI1TAYymwfbfrqbV.jpg",
	},
}
