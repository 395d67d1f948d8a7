package companion

// Flavor text pools for speech bubbles
var (
	WanderLines = []string{
		"*Inhales* ... Honk!!",
		"I cause problems.",
		"Are you trying to get stuff done? Not on my watch.",
		"Did you know I can dance?",
		"Whatcha doin'?",
		"I'm a menace to society.",
		"Doin' what geese do best.",
		"Look behind you.",
		"Acting like I'm not a trained killer.",
		"Roaming wherever I please.",
		"You don't have authority over me.",
		"Mess with the honk, you get the bonk!",
		"Don't pretend like I'm not here.",
		"Pay attention to me!",
		"I'm the boss around here.",
		"Hit me, I dare you!",
		"Your computer is my playground.",
		"You have no idea what I'm capable of.",
		"I successfully wasted your time.",
		"This goose is on the loose.",
		"HEY! I own this computer. Leave.",
	}

	ChaseStartLines = []string{
		"Alright, now you're gonna get it!",
		"You're in trouble now!",
		"HEY! Watch it pal!",
		"You're gonna regret doing that...",
		"YOU DARE HIT ME?!",
		"Mess with the honk, you get the bonk!",
	}

	ChaseLines = []string{
		"You're not getting away this time!",
		"I'm coming for you!",
		"I'm on your tail!",
		"You can't run forever!",
		"I'm gaining on you!",
		"You can't hide from me!",
		"You can't shake me!",
		"I'm not done with you yet!",
		"I'm not giving up!",
	}

	NewHatLines = []string{
		"Pretty snazzy, eh?",
		"I really like this one.",
		"I'm feeling fancy today.",
		"Not bad. Not bad at all.",
		"*Looks in the mirror*",
		"OH YEAH!",
		"Clearly the best hat.",
		"I look good. Really good.",
		"Looking sharp.",
		"A fine choice.",
		"Never been a finer goose than me.",
		"You like it?",
		"For once you made a good decision.",
		"I'm the best, aren't I?",
	}

	NoHatLine = "BORING!"
)
