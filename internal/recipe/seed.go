package recipe

func imagePath(p string) *string {
	return &p
}

// SeedRecipes returns freshly built copies of the sample recipes a new
// Manager starts with: four main dishes, one appetizer and one dessert.
func SeedRecipes() []*Recipe {
	adobo := NewMainDish("Chicken Adobo", 4, imagePath("images/adobo.jpg"))
	adobo.AddIngredient(NewIngredient("Chicken", "1 kg", 180.00))
	adobo.AddIngredient(NewIngredient("Soy Sauce", "1/2 cup", 25.00))
	adobo.AddIngredient(NewIngredient("Vinegar", "1/2 cup", 15.00))
	adobo.AddIngredient(NewIngredient("Garlic", "8 cloves", 10.00))
	adobo.AddIngredient(NewIngredient("Bay Leaves", "3 pieces", 5.00))
	adobo.AddIngredient(NewIngredient("Black Pepper", "1 tsp", 8.00))
	adobo.SetInstructions("1. Combine chicken, soy sauce, vinegar, garlic, bay leaves, and pepper in a pot.\n" +
		"2. Marinate for at least 30 minutes.\n" +
		"3. Bring to a boil, then reduce heat and simmer for 30-40 minutes.\n" +
		"4. Remove chicken and reduce sauce until thickened.\n" +
		"5. Pour sauce over chicken and serve with rice.")
	adobo.SetPersonalNotes("Add a tablespoon of sugar for a sweeter version. Can use pork instead of chicken.")

	lumpia := NewAppetizer("Lumpia Shanghai", "With sweet chili sauce", imagePath("images/lumpia.jpg"))
	lumpia.AddIngredient(NewIngredient("Ground Pork", "500g", 150.00))
	lumpia.AddIngredient(NewIngredient("Carrots", "2 pieces", 20.00))
	lumpia.AddIngredient(NewIngredient("Onion", "1 piece", 15.00))
	lumpia.AddIngredient(NewIngredient("Garlic", "5 cloves", 8.00))
	lumpia.AddIngredient(NewIngredient("Spring Roll Wrapper", "1 pack", 35.00))
	lumpia.AddIngredient(NewIngredient("Egg", "1 piece", 8.00))
	lumpia.AddIngredient(NewIngredient("Cooking Oil", "2 cups", 40.00))
	lumpia.SetInstructions("1. Mix ground pork, minced carrots, onion, garlic, and egg.\n" +
		"2. Season with salt, pepper, and soy sauce.\n" +
		"3. Wrap mixture in spring roll wrappers.\n" +
		"4. Deep fry until golden brown.\n" +
		"5. Serve hot with sweet chili sauce.")
	lumpia.SetPersonalNotes("Make sure oil is hot enough before frying. Can be frozen for later use.")

	sinigang := NewMainDish("Sinigang na Baboy", 6, imagePath("images/sinigang.jpg"))
	sinigang.AddIngredient(NewIngredient("Pork Ribs", "800g", 280.00))
	sinigang.AddIngredient(NewIngredient("Tamarind Mix", "1 pack", 25.00))
	sinigang.AddIngredient(NewIngredient("Kangkong", "1 bunch", 20.00))
	sinigang.AddIngredient(NewIngredient("Radish", "1 piece", 15.00))
	sinigang.AddIngredient(NewIngredient("Tomatoes", "3 pieces", 30.00))
	sinigang.AddIngredient(NewIngredient("Onion", "1 piece", 15.00))
	sinigang.AddIngredient(NewIngredient("String Beans", "1 bundle", 25.00))
	sinigang.SetInstructions("1. Boil pork ribs in water until tender (about 45 minutes).\n" +
		"2. Add tomatoes and onions, simmer for 5 minutes.\n" +
		"3. Add tamarind mix and stir well.\n" +
		"4. Add radish and string beans, cook for 5 minutes.\n" +
		"5. Add kangkong and turn off heat.\n" +
		"6. Serve hot with rice.")
	sinigang.SetPersonalNotes("Can use fresh tamarind instead of mix for more authentic taste.")

	pancit := NewMainDish("Pancit Canton", 5, imagePath("images/pancit.jpg"))
	pancit.AddIngredient(NewIngredient("Canton Noodles", "500g", 45.00))
	pancit.AddIngredient(NewIngredient("Chicken Breast", "300g", 120.00))
	pancit.AddIngredient(NewIngredient("Cabbage", "1/4 head", 25.00))
	pancit.AddIngredient(NewIngredient("Carrots", "2 pieces", 20.00))
	pancit.AddIngredient(NewIngredient("Snow Peas", "1 cup", 30.00))
	pancit.AddIngredient(NewIngredient("Soy Sauce", "1/4 cup", 15.00))
	pancit.AddIngredient(NewIngredient("Garlic", "6 cloves", 8.00))
	pancit.SetInstructions("1. Boil noodles according to package instructions, drain.\n" +
		"2. Sauté garlic, add chicken and cook until done.\n" +
		"3. Add vegetables and stir-fry.\n" +
		"4. Add noodles and soy sauce, mix well.\n" +
		"5. Cook for 3-5 minutes, stirring constantly.\n" +
		"6. Serve with calamansi.")
	pancit.SetPersonalNotes("Don't overcook the noodles. Add more vegetables as desired.")

	halohalo := NewDessert("Halo-Halo", "Medium Sweet", imagePath("images/halohalo.jpg"))
	halohalo.AddIngredient(NewIngredient("Shaved Ice", "2 cups", 0.00))
	halohalo.AddIngredient(NewIngredient("Evaporated Milk", "1/2 cup", 25.00))
	halohalo.AddIngredient(NewIngredient("Sugar", "2 tbsp", 5.00))
	halohalo.AddIngredient(NewIngredient("Sweet Beans", "1/4 cup", 20.00))
	halohalo.AddIngredient(NewIngredient("Nata de Coco", "1/4 cup", 15.00))
	halohalo.AddIngredient(NewIngredient("Kaong", "1/4 cup", 20.00))
	halohalo.AddIngredient(NewIngredient("Ube Halaya", "2 tbsp", 30.00))
	halohalo.AddIngredient(NewIngredient("Leche Flan", "1 slice", 40.00))
	halohalo.AddIngredient(NewIngredient("Ube Ice Cream", "1 scoop", 35.00))
	halohalo.SetInstructions("1. In a tall glass, layer sweet beans, nata de coco, and kaong.\n" +
		"2. Add shaved ice on top.\n" +
		"3. Pour evaporated milk and sprinkle sugar.\n" +
		"4. Top with ube halaya, leche flan, and ice cream.\n" +
		"5. Mix well before eating (halo means 'mix').")
	halohalo.SetPersonalNotes("Chill all ingredients before assembling. Can customize toppings based on preference.")

	lechon := NewMainDish("Lechon Kawali", 4, imagePath("images/lechon.jpg"))
	lechon.AddIngredient(NewIngredient("Pork Belly", "1 kg", 320.00))
	lechon.AddIngredient(NewIngredient("Bay Leaves", "3 pieces", 5.00))
	lechon.AddIngredient(NewIngredient("Peppercorns", "1 tbsp", 10.00))
	lechon.AddIngredient(NewIngredient("Salt", "2 tbsp", 3.00))
	lechon.AddIngredient(NewIngredient("Cooking Oil", "3 cups", 60.00))
	lechon.AddIngredient(NewIngredient("Garlic", "1 head", 12.00))
	lechon.SetInstructions("1. Boil pork belly with bay leaves, peppercorns, and salt for 45 minutes.\n" +
		"2. Remove and let cool completely. Pat dry.\n" +
		"3. Rub with salt all over the skin.\n" +
		"4. Deep fry in hot oil until golden and crispy.\n" +
		"5. Chop into serving pieces.\n" +
		"6. Serve with lechon sauce or liver sauce.")
	lechon.SetPersonalNotes("Make sure pork is completely dry before frying for extra crispy skin.")

	return []*Recipe{adobo, lumpia, sinigang, pancit, halohalo, lechon}
}
