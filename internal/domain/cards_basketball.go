package domain

// basketballCards is the static basketball catalog. Same ordering contract
// as footballCards.
var basketballCards = []CardDefinition{
	// Mild
	{SportBasketball, "Made Free Throw", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportBasketball, "Missed Free Throw", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportBasketball, "Defensive Rebound", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportBasketball, "Offensive Rebound", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportBasketball, "Assist", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportBasketball, "Timeout Called", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportBasketball, "Substitution", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportBasketball, "Shot Clock Violation", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportBasketball, "Traveling Call", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportBasketball, "Jump Ball", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportBasketball, "Mid-Range Jumper", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportBasketball, "Layup", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportBasketball, "Coach Close-Up", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportBasketball, "Mascot Skit", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportBasketball, "Kiss Cam", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportBasketball, "Courtside Celebrity", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportBasketball, "Announcer Says Downtown", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportBasketball, "Stat Graphic Shown", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportBasketball, "Pick and Roll", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportBasketball, "Fast Break", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportBasketball, "Full-Court Press", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportBasketball, "Airball", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportBasketball, "Bank Shot", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportBasketball, "Floater in the Lane", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportBasketball, "Impersonate the Coach", "Do your best angry-coach impression", SeverityMild, TypeChallenge, 2},
	{SportBasketball, "Call the Shot", "Predict make or miss before a free throw", SeverityMild, TypeChallenge, 2},
	{SportBasketball, "Name That Bench", "Name three bench players", SeverityMild, TypeChallenge, 2},
	{SportBasketball, "Drink Runner", "Refill drinks for the room", SeverityMild, TypePenalty, 2},
	// Moderate
	{SportBasketball, "Three-Pointer", "Take 2 drinks", SeverityModerate, TypeAction, 3},
	{SportBasketball, "Dunk", "Take 2 drinks", SeverityModerate, TypeAction, 3},
	{SportBasketball, "Blocked Shot", "Take 2 drinks", SeverityModerate, TypeAction, 3},
	{SportBasketball, "Steal", "Take 2 drinks", SeverityModerate, TypeAction, 3},
	{SportBasketball, "And-One", "Take 2 drinks", SeverityModerate, TypeAction, 3},
	{SportBasketball, "Technical Foul", "Take 3 drinks", SeverityModerate, TypeAction, 3},
	{SportBasketball, "Flagrant Foul", "Take 3 drinks", SeverityModerate, TypeAction, 3},
	{SportBasketball, "Charge Taken", "Take 2 drinks", SeverityModerate, TypeAction, 3},
	{SportBasketball, "Alley-Oop", "Take 3 drinks", SeverityModerate, TypeAction, 3},
	{SportBasketball, "Four-Point Play Attempt", "Take 2 drinks", SeverityModerate, TypeAction, 3},
	{SportBasketball, "Coast-to-Coast Layup", "Take 2 drinks", SeverityModerate, TypeAction, 3},
	{SportBasketball, "10-0 Scoring Run", "Take 3 drinks", SeverityModerate, TypeAction, 3},
	{SportBasketball, "Lead Change", "Take 2 drinks", SeverityModerate, TypeAction, 3},
	{SportBasketball, "Buzzer at End of Quarter", "Take 2 drinks", SeverityModerate, TypeAction, 3},
	{SportBasketball, "Shot Off the Glass From Deep", "Take 2 drinks", SeverityModerate, TypeAction, 3},
	{SportBasketball, "Posterizing Dunk", "Take 3 drinks", SeverityModerate, TypeAction, 3},
	{SportBasketball, "Coach Ejection Warning", "Take 3 drinks", SeverityModerate, TypeAction, 3},
	{SportBasketball, "Double Technical", "Take 3 drinks", SeverityModerate, TypeAction, 3},
	{SportBasketball, "Waterfall", "Start a waterfall, you stop first", SeverityModerate, TypeChallenge, 3},
	{SportBasketball, "Pick a Victim", "Choose someone to take 3 drinks", SeverityModerate, TypePenalty, 3},
	// Severe
	{SportBasketball, "Half-Court Buzzer Beater", "Finish your drink", SeveritySevere, TypeAction, 5},
	{SportBasketball, "Game-Winning Shot", "Finish your drink", SeveritySevere, TypeAction, 5},
	{SportBasketball, "Overtime", "Shotgun a beer", SeveritySevere, TypeAction, 5},
	{SportBasketball, "Double Overtime", "Finish your drink + 1/2 another", SeveritySevere, TypeAction, 5},
	{SportBasketball, "Player Ejected", "Take a shot", SeveritySevere, TypeAction, 5},
	{SportBasketball, "Coach Ejected", "Take a shot", SeveritySevere, TypeAction, 5},
	{SportBasketball, "Triple-Double Completed", "Take a shot", SeveritySevere, TypeAction, 5},
	{SportBasketball, "50-Point Scorer", "Finish your drink", SeveritySevere, TypeAction, 5},
	{SportBasketball, "Bench-Clearing Scuffle", "Take a shot", SeveritySevere, TypeAction, 5},
	{SportBasketball, "Fan Hits Half-Court Shot", "Shotgun a beer", SeveritySevere, TypeAction, 5},
	{SportBasketball, "Broken Backboard", "Finish your drink", SeveritySevere, TypeAction, 5},
	{SportBasketball, "Free Throw to Win With No Time Left", "Take a shot", SeveritySevere, TypeAction, 5},
}
