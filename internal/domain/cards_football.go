package domain

// footballCards is the static football catalog. Order is load-bearing: deck
// indices reference positions in this slice, so entries are append-only
// within a build and never reordered.
var footballCards = []CardDefinition{
	// Mild
	{SportFootball, "First Down", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "Incomplete Pass", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "Punt", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "Kickoff Touchback", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "Fair Catch", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "Handoff Up the Middle", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "Screen Pass", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "Checkdown Throw", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "QB Slide", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "Out of Bounds", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "Delay of Game", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "False Start", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "Offsides", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "Timeout Called", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "Injury Timeout", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "Commercial Break", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "Truck Commercial", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "Beer Commercial", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "Replay Review", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "Measurement for First Down", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "Announcer Says Unbelievable", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "Announcer Says Momentum", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "Sideline Reporter Segment", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "Coach Close-Up", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "Mascot on Screen", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "Crowd Shot", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "Fan in Costume", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "Cheerleaders on Screen", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "Stat Graphic Shown", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "Play Action Fake", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "Shotgun Formation", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "Hurry-Up Offense", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "Audible at the Line", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "Three and Out", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "Kick Returner Takes a Knee", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "Extra Point Good", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "Field Goal Attempt", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "Coffin Corner Punt", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "Toe-Tap Catch", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "Spike to Stop the Clock", "Take 1 drink", SeverityMild, TypeAction, 1},
	{SportFootball, "Impersonate the Ref", "Do your best referee signal", SeverityMild, TypeChallenge, 2},
	{SportFootball, "Call the Next Play", "Predict run or pass before the snap", SeverityMild, TypeChallenge, 2},
	{SportFootball, "Trivia Time", "Name three players on the field", SeverityMild, TypeChallenge, 2},
	{SportFootball, "Stand Until First Down", "Stand up until either team gets a first down", SeverityMild, TypeChallenge, 2},
	{SportFootball, "Snack Run", "Grab snacks for the room", SeverityMild, TypePenalty, 2},
	// Moderate
	{SportFootball, "Touchdown", "Take 2 drinks", SeverityModerate, TypeAction, 3},
	{SportFootball, "Field Goal Good", "Take 2 drinks", SeverityModerate, TypeAction, 3},
	{SportFootball, "Sack", "Take 2 drinks", SeverityModerate, TypeAction, 3},
	{SportFootball, "Fumble", "Take 2 drinks", SeverityModerate, TypeAction, 3},
	{SportFootball, "Interception", "Take 3 drinks", SeverityModerate, TypeAction, 3},
	{SportFootball, "Holding Penalty", "Take 2 drinks", SeverityModerate, TypeAction, 3},
	{SportFootball, "Pass Interference", "Take 2 drinks", SeverityModerate, TypeAction, 3},
	{SportFootball, "Roughing the Passer", "Take 2 drinks", SeverityModerate, TypeAction, 3},
	{SportFootball, "Facemask Penalty", "Take 2 drinks", SeverityModerate, TypeAction, 3},
	{SportFootball, "Unsportsmanlike Conduct", "Take 2 drinks", SeverityModerate, TypeAction, 3},
	{SportFootball, "Coach Challenge Flag", "Take 2 drinks", SeverityModerate, TypeAction, 3},
	{SportFootball, "Turnover on Downs", "Take 2 drinks", SeverityModerate, TypeAction, 3},
	{SportFootball, "Fourth Down Conversion", "Take 3 drinks", SeverityModerate, TypeAction, 3},
	{SportFootball, "Two-Point Attempt", "Take 2 drinks", SeverityModerate, TypeAction, 3},
	{SportFootball, "Missed Field Goal", "Take 2 drinks", SeverityModerate, TypeAction, 3},
	{SportFootball, "Blocked Punt", "Take 3 drinks", SeverityModerate, TypeAction, 3},
	{SportFootball, "Muffed Punt", "Take 3 drinks", SeverityModerate, TypeAction, 3},
	{SportFootball, "40+ Yard Completion", "Take 2 drinks", SeverityModerate, TypeAction, 3},
	{SportFootball, "40+ Yard Run", "Take 2 drinks", SeverityModerate, TypeAction, 3},
	{SportFootball, "Kick Return Past Midfield", "Take 2 drinks", SeverityModerate, TypeAction, 3},
	{SportFootball, "Defensive Stand in Red Zone", "Take 2 drinks", SeverityModerate, TypeAction, 3},
	{SportFootball, "Goal Line Stand", "Take 3 drinks", SeverityModerate, TypeAction, 3},
	{SportFootball, "Trick Play", "Take 3 drinks", SeverityModerate, TypeAction, 3},
	{SportFootball, "Flea Flicker", "Take 3 drinks", SeverityModerate, TypeAction, 3},
	{SportFootball, "Onside Kick Attempt", "Take 3 drinks", SeverityModerate, TypeAction, 3},
	{SportFootball, "Safety Blitz", "Take 2 drinks", SeverityModerate, TypeAction, 3},
	{SportFootball, "QB Scramble for First Down", "Take 2 drinks", SeverityModerate, TypeAction, 3},
	{SportFootball, "Touchdown Dance", "Take 2 drinks", SeverityModerate, TypeAction, 3},
	{SportFootball, "Two-Minute Warning", "Take 2 drinks", SeverityModerate, TypeAction, 3},
	{SportFootball, "Hail Mary Attempt", "Take 3 drinks", SeverityModerate, TypeAction, 3},
	{SportFootball, "Overturned Call", "Take 3 drinks", SeverityModerate, TypeAction, 3},
	{SportFootball, "Player Ejected", "Take 3 drinks", SeverityModerate, TypeAction, 3},
	{SportFootball, "Chug Relay", "Everyone takes 2 drinks in seat order", SeverityModerate, TypeChallenge, 3},
	{SportFootball, "Waterfall", "Start a waterfall, you stop first", SeverityModerate, TypeChallenge, 3},
	{SportFootball, "Pick a Victim", "Choose someone to take 3 drinks", SeverityModerate, TypePenalty, 3},
	// Severe
	{SportFootball, "Pick Six", "Take a shot", SeveritySevere, TypeAction, 5},
	{SportFootball, "Fumble Returned for TD", "Take a shot", SeveritySevere, TypeAction, 5},
	{SportFootball, "Kickoff Return TD", "Take a shot", SeveritySevere, TypeAction, 5},
	{SportFootball, "Punt Return TD", "Take a shot", SeveritySevere, TypeAction, 5},
	{SportFootball, "Successful Onside Kick", "Take a shot", SeveritySevere, TypeAction, 5},
	{SportFootball, "Hail Mary Touchdown", "Finish your drink", SeveritySevere, TypeAction, 5},
	{SportFootball, "Blocked Field Goal", "Take a shot", SeveritySevere, TypeAction, 5},
	{SportFootball, "Safety", "Finish your drink", SeveritySevere, TypeAction, 5},
	{SportFootball, "Successful Two-Point Conversion", "Take a shot", SeveritySevere, TypeAction, 5},
	{SportFootball, "Fake Punt Conversion", "Take a shot", SeveritySevere, TypeAction, 5},
	{SportFootball, "Fake Field Goal", "Take a shot", SeveritySevere, TypeAction, 5},
	{SportFootball, "Overtime", "Shotgun a beer", SeveritySevere, TypeAction, 5},
	{SportFootball, "Game-Winning Field Goal", "Finish your drink", SeveritySevere, TypeAction, 5},
	{SportFootball, "Walk-Off Touchdown", "Finish your drink + 1/2 another", SeveritySevere, TypeAction, 5},
	{SportFootball, "Brawl on the Field", "Take a shot", SeveritySevere, TypeAction, 5},
	{SportFootball, "Coach Thrown Out", "Take a shot", SeveritySevere, TypeAction, 5},
	{SportFootball, "Scorigami", "Shotgun a beer", SeveritySevere, TypeAction, 5},
	{SportFootball, "Lead Change in Final Two Minutes", "Take a shot", SeveritySevere, TypeAction, 5},
	{SportFootball, "Streaker on the Field", "Finish your drink", SeveritySevere, TypeAction, 5},
	{SportFootball, "Doink off the Upright", "Take a shot", SeveritySevere, TypeAction, 5},
}
