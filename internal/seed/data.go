package seed

import "github.com/jenaralee/StoryStash/internal/entities"

func rating(v int) *int { return &v }

func books() []entities.Book {
	return []entities.Book{
		{
			GoogleID:      "seed-gruffalo",
			Title:         "The Gruffalo",
			Author:        "Julia Donaldson",
			Description:   "A mouse takes a stroll through the deep dark wood and outwits the creatures he meets.",
			Categories:    []string{"Picture Books", "Bedtime Stories"},
			AgeRange:      "3-5 years",
			PublishedDate: "1999-03-23",
			Rating:        rating(48),
		},
		{
			GoogleID:      "seed-room-on-the-broom",
			Title:         "Room on the Broom",
			Author:        "Julia Donaldson",
			Description:   "A witch and her cat make room on the broom for a dog, a bird and a frog.",
			Categories:    []string{"Picture Books", "Fantasy"},
			AgeRange:      "3-5 years",
			PublishedDate: "2001-09-01",
			Rating:        rating(47),
		},
		{
			GoogleID:      "seed-princess-dragon",
			Title:         "Princess and the Dragon",
			Author:        "Audrey Wood",
			Description:   "A princess who would rather be a dragon and a dragon who would rather be a princess swap places.",
			Categories:    []string{"Fairy Tales", "Adventure"},
			AgeRange:      "6-8 years",
			PublishedDate: "2024-05-14",
			Rating:        rating(44),
			IsNew:         true,
		},
		{
			GoogleID:      "seed-magic-tree-house-1",
			Title:         "Dinosaurs Before Dark",
			Author:        "Mary Pope Osborne",
			Description:   "Jack and Annie find a magic tree house that whisks them back to the age of dinosaurs.",
			Categories:    []string{"Early Readers", "Adventure", "Fantasy"},
			AgeRange:      "6-8 years",
			PublishedDate: "1992-07-28",
			Rating:        rating(45),
		},
		{
			GoogleID:      "seed-magic-tree-house-2",
			Title:         "The Knight at Dawn",
			Author:        "Mary Pope Osborne",
			Description:   "The tree house takes Jack and Annie to a medieval castle.",
			Categories:    []string{"Early Readers", "Adventure"},
			AgeRange:      "6-8 years",
			PublishedDate: "1993-02-23",
			Rating:        rating(44),
		},
		{
			GoogleID:      "seed-wild-robot",
			Title:         "The Wild Robot",
			Author:        "Peter Brown",
			Description:   "A robot washes up on a remote island and learns to survive among the animals.",
			Categories:    []string{"Middle Grade", "Science Fiction", "Adventure"},
			AgeRange:      "9-12 years",
			PublishedDate: "2016-04-05",
			Rating:        rating(47),
		},
		{
			GoogleID:      "seed-wild-robot-protects",
			Title:         "The Wild Robot Protects",
			Author:        "Peter Brown",
			Description:   "Roz sets out across a poisoned sea to save her island home.",
			Categories:    []string{"Middle Grade", "Science Fiction"},
			AgeRange:      "9-12 years",
			PublishedDate: "2023-10-03",
			Rating:        rating(46),
			IsNew:         true,
		},
		{
			GoogleID:      "seed-little-scientist",
			Title:         "Baby Loves Science",
			Author:        "Ruth Spiro",
			Description:   "Big science ideas for the smallest readers.",
			Categories:    []string{"Educational", "Picture Books"},
			AgeRange:      "0-2 years",
			PublishedDate: "2016-08-02",
			Rating:        rating(42),
			IsNew:         true,
		},
		{
			GoogleID:      "seed-ada-twist",
			Title:         "Ada Twist, Scientist",
			Author:        "Andrea Beaty",
			Description:   "Ada's curiosity about how the world works sends her on a mission to find out.",
			Categories:    []string{"Picture Books", "Educational", "Biography"},
			AgeRange:      "3-5 years",
			PublishedDate: "2016-09-06",
			Rating:        rating(46),
		},
		{
			GoogleID:      "seed-missing-marble",
			Title:         "The Case of the Missing Marble",
			Author:        "Ana Detective",
			Description:   "A young sleuth follows the clues around the playground.",
			Categories:    []string{"Mystery", "Early Readers"},
			AgeRange:      "6-8 years",
			PublishedDate: "2020-01-15",
		},
	}
}

func authors() []entities.Author {
	return []entities.Author{
		{Name: "Julia Donaldson", Bio: "British writer of rhyming picture books and former Children's Laureate."},
		{Name: "Mary Pope Osborne", Bio: "American author of the Magic Tree House series."},
		{Name: "Peter Brown", Bio: "Author and illustrator of picture books and the Wild Robot novels."},
		{Name: "Andrea Beaty", Bio: "Author of the Questioneers picture books."},
	}
}

func series() []entities.BookSeries {
	return []entities.BookSeries{
		{Name: "Magic Tree House", Author: "Mary Pope Osborne", Description: "Jack and Annie travel through time in a magic tree house."},
		{Name: "The Wild Robot", Author: "Peter Brown", Description: "The adventures of Roz the robot."},
		{Name: "The Questioneers", Author: "Andrea Beaty", Description: "Curious kids who ask big questions."},
	}
}
