package generator

// Name pools for synthetic values. The ingredient pool is a fixed list;
// requesting more names than it holds is a detected error, never a silent
// duplicate.

var ingredientNamePool = []string{
	"Mozzarella Cheese", "Cheddar Cheese", "Parmesan", "Pepperoni", "Italian Sausage",
	"Bacon", "Ham", "Chicken", "Beef", "Onion", "Green Pepper", "Red Pepper",
	"Mushroom", "Black Olives", "Green Olives", "Tomato Sauce", "Pesto", "BBQ Sauce",
	"Garlic", "Spinach", "Basil", "Oregano", "Chili Flakes", "Pineapple", "Jalapeno",
	"Anchovies", "Ricotta", "Feta", "Corn", "Potato", "Rosemary", "Thyme", "Butter",
	"Sugar", "Salt", "Yeast", "Pizza Dough", "Tomato", "Lettuce", "Cucumber", "Carrot",
	"Ranch Dressing", "Blue Cheese", "Sliced Tomatoes", "Olive Oil", "Lemon Juice",
	"Vinegar", "Ketchup", "Mustard", "Pickles", "BBQ Rub",
}

var ingredientUnits = []string{"kg", "units", "liters", "g"}

var pizzaNames = []string{
	"Margherita", "Pepperoni", "Hawaiian", "Veggie", "Meat Lovers", "BBQ Chicken",
	"Four Cheese", "Pesto Chicken", "Mediterranean", "Buffalo",
}

var sideNames = []string{"Garlic Bread", "Chicken Wings", "Salad", "Fries", "Mozzarella Sticks"}

var drinkNames = []string{"Coke", "Diet Coke", "Sprite", "Bottled Water", "Orange Juice", "Iced Tea"}

// Size enumerations are category specific. Pizza sizes are ordered by rank;
// the price surcharge is proportional to the index.
var (
	pizzaSizes = []string{"Small", "Medium", "Large", "Extra Large"}
	drinkSizes = []string{"330ml", "500ml", "750ml"}
	sideSizes  = []string{"Single", "Share"}
)

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
	"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Christopher", "Lisa", "Daniel", "Nancy",
	"Matthew", "Betty", "Anthony", "Margaret", "Mark", "Sandra", "Donald", "Ashley",
	"Steven", "Dorothy", "Paul", "Kimberly", "Andrew", "Emily", "Joshua", "Donna",
	"Kenneth", "Michelle", "Kevin", "Carol", "Brian", "Amanda", "George", "Melissa",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
	"Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson",
	"White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker",
}

var streetNames = []string{
	"Main Street", "Oak Avenue", "Maple Drive", "Cedar Lane", "Elm Street",
	"Washington Boulevard", "Park Avenue", "Lake Road", "Hill Street", "River Drive",
	"Sunset Boulevard", "Highland Avenue", "Church Street", "Mill Road", "Spring Street",
}

var cityNames = []string{
	"Springfield", "Riverside", "Fairview", "Franklin", "Greenville",
	"Bristol", "Clinton", "Madison", "Georgetown", "Salem",
	"Ashland", "Oxford", "Arlington", "Burlington", "Manchester",
}

var emailDomains = []string{
	"gmail.com", "yahoo.com", "hotmail.com", "outlook.com",
	"icloud.com", "mail.com", "example.com",
}
