// Package menu holds the fixed catalog. Items are defined at compile time and
// read-only at runtime; there is no inventory behind them.
package menu

type Item struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
	Image string `json:"image"`
}

var Items = []Item{
	{ID: 1, Name: "Beef Noodle Soup", Price: 120, Image: "beef_noodle.jpg"},
	{ID: 2, Name: "Braised Pork Rice", Price: 60, Image: "pork_rice.jpg"},
	{ID: 3, Name: "Chicken Cutlet Bento", Price: 90, Image: "chicken_bento.jpg"},
}

func Find(id int) (Item, bool) {
	for _, item := range Items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}
