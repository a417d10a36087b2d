package catalog

import "github.com/showdesk/showdesk/internal/task"

var definitions = []Definition{
	{
		CatalogID:       "booking-venue-hold",
		Title:           "Place venue hold",
		Description:     "Confirm the venue's availability for the event date and place a hold.",
		Category:        task.CategoryBooking,
		Priority:        task.PriorityHigh,
		Assignee:        task.AssigneeProducer,
		DaysBeforeEvent: 120,
		GuidingQuestions: []string{
			"Is the date free of competing holds?",
			"What is the hold expiry and the challenge policy?",
			"Does capacity match the projected attendance?",
		},
		IsCritical: true,
	},
	{
		CatalogID:       "arte-lineup-confirm",
		Title:           "Confirm artist lineup",
		Description:     "Lock the lineup and running order with every artist's management.",
		Category:        task.CategoryArte,
		Priority:        task.PriorityHigh,
		Assignee:        task.AssigneeProducer,
		DaysBeforeEvent: 100,
		GuidingQuestions: []string{
			"Are all offers countersigned?",
			"Any routing conflicts around the date?",
			"Who closes support act slots?",
		},
		IsCritical: true,
	},
	{
		CatalogID:       "booking-venue-contract",
		Title:           "Sign venue contract",
		Description:     "Negotiate and sign the venue rental contract.",
		Category:        task.CategoryBooking,
		Priority:        task.PriorityHigh,
		Assignee:        task.AssigneeProducer,
		DaysBeforeEvent: 90,
		GuidingQuestions: []string{
			"Are curfew and noise limits written into the contract?",
			"What does the cancellation clause cost at each milestone?",
			"Is the load-in window long enough for the stage build?",
		},
		IsCritical: true,
	},
	{
		CatalogID:       "mkt-announce",
		Title:           "Announce event and on-sale date",
		Description:     "Public announcement across all channels with the on-sale date.",
		Category:        task.CategoryMarketing,
		Priority:        task.PriorityHigh,
		Assignee:        task.AssigneeCoordinator,
		DaysBeforeEvent: 80,
		GuidingQuestions: []string{
			"Is the key art approved by every artist?",
			"Are embargo times aligned with the artists' own channels?",
		},
		IsCritical: true,
	},
	{
		CatalogID:       "booking-deposit",
		Title:           "Pay venue deposit",
		Description:     "Wire the first venue installment per the contract schedule.",
		Category:        task.CategoryBooking,
		Priority:        task.PriorityHigh,
		Assignee:        task.AssigneeProducer,
		DaysBeforeEvent: 75,
		GuidingQuestions: []string{
			"Does the invoice match the contracted amount?",
			"Is the payment confirmation archived with the contract?",
		},
		IsCritical: true,
	},
	{
		CatalogID:       "mkt-ticketing-setup",
		Title:           "Set up ticketing",
		Description:     "Configure the ticketing platform: price tiers, fees, holds and comps.",
		Category:        task.CategoryMarketing,
		Priority:        task.PriorityHigh,
		Assignee:        task.AssigneeCoordinator,
		DaysBeforeEvent: 70,
		GuidingQuestions: []string{
			"Do tier quantities add up to sellable capacity?",
			"Are production and artist holds blocked before on-sale?",
			"Is the settlement account verified?",
		},
		IsCritical: true,
	},
	{
		CatalogID:       "arte-rider-review",
		Title:           "Review technical riders",
		Description:     "Collect and review every artist's technical and hospitality rider.",
		Category:        task.CategoryArte,
		Priority:        task.PriorityHigh,
		Assignee:        task.AssigneeProducer,
		DaysBeforeEvent: 60,
		GuidingQuestions: []string{
			"Which rider items exceed the house system?",
			"Any hospitality items that need import or special sourcing?",
		},
		IsCritical: true,
	},
	{
		CatalogID:       "booking-insurance",
		Title:           "Contract event insurance",
		Description:     "Bind civil liability and cancellation coverage for the event.",
		Category:        task.CategoryBooking,
		Priority:        task.PriorityMedium,
		Assignee:        task.AssigneeProducer,
		DaysBeforeEvent: 60,
		GuidingQuestions: []string{
			"Does the venue require a minimum coverage amount?",
			"Is weather cancellation included for open-air dates?",
		},
	},
	{
		CatalogID:       "mkt-press-kit",
		Title:           "Distribute press kit",
		Description:     "Send the press kit and accreditation form to media contacts.",
		Category:        task.CategoryMarketing,
		Priority:        task.PriorityMedium,
		Assignee:        task.AssigneeCoordinator,
		DaysBeforeEvent: 55,
		GuidingQuestions: []string{
			"Are photos cleared for editorial use?",
			"Who approves interview requests?",
		},
	},
	{
		CatalogID:       "arte-stage-design",
		Title:           "Approve stage design",
		Description:     "Close the stage, set and video design with the artistic team.",
		Category:        task.CategoryArte,
		Priority:        task.PriorityMedium,
		Assignee:        task.AssigneeCoordinator,
		DaysBeforeEvent: 50,
		GuidingQuestions: []string{
			"Does the design fit the venue's rigging plot and weight limits?",
			"Is the build cost inside the production budget line?",
		},
	},
	{
		CatalogID:       "booking-permits",
		Title:           "File municipal permits",
		Description:     "File the public-event permit and safety plan with the municipality.",
		Category:        task.CategoryBooking,
		Priority:        task.PriorityHigh,
		Assignee:        task.AssigneeProducer,
		DaysBeforeEvent: 45,
		GuidingQuestions: []string{
			"What is the statutory review period for this district?",
			"Is the crowd-safety plan signed by the licensed engineer?",
		},
		IsCritical: true,
	},
	{
		CatalogID:       "mkt-social-calendar",
		Title:           "Build social content calendar",
		Description:     "Plan the content calendar from announcement through event week.",
		Category:        task.CategoryMarketing,
		Priority:        task.PriorityMedium,
		Assignee:        task.AssigneeCoordinator,
		DaysBeforeEvent: 45,
		GuidingQuestions: []string{
			"Which posts need artist approval before scheduling?",
		},
	},
	{
		CatalogID:       "arte-sound-light-vendor",
		Title:           "Contract audio and lighting vendor",
		Description:     "Close quotes and contract the audio, lighting and video suppliers.",
		Category:        task.CategoryArte,
		Priority:        task.PriorityHigh,
		Assignee:        task.AssigneeProducer,
		DaysBeforeEvent: 40,
		GuidingQuestions: []string{
			"Do the quotes cover every rider requirement flagged in review?",
			"Is a backup console included?",
		},
		IsCritical: true,
	},
	{
		CatalogID:       "mkt-poster-print",
		Title:           "Print and place posters",
		Description:     "Send poster art to print and book street placement.",
		Category:        task.CategoryMarketing,
		Priority:        task.PriorityLow,
		Assignee:        task.AssigneeCoordinator,
		DaysBeforeEvent: 35,
		GuidingQuestions: []string{
			"Are print specs confirmed with the shop?",
		},
	},
	{
		CatalogID:       "arte-backline",
		Title:           "Source backline",
		Description:     "Rent or confirm the backline every artist needs on stage.",
		Category:        task.CategoryArte,
		Priority:        task.PriorityMedium,
		Assignee:        task.AssigneeCoordinator,
		DaysBeforeEvent: 30,
		GuidingQuestions: []string{
			"Which items travel with the artists and which are rented locally?",
			"Who signs off substitutions?",
		},
	},
	{
		CatalogID:       "mkt-radio-spots",
		Title:           "Book radio and streaming spots",
		Description:     "Close the paid media plan for the final month.",
		Category:        task.CategoryMarketing,
		Priority:        task.PriorityMedium,
		Assignee:        task.AssigneeCoordinator,
		DaysBeforeEvent: 25,
		GuidingQuestions: []string{
			"Is spend weighted toward the slowest-selling tiers?",
		},
	},
	{
		CatalogID:       "arte-stage-plot",
		Title:           "Publish stage plot and patch list",
		Description:     "Distribute the final stage plot, input list and patch to all crews.",
		Category:        task.CategoryArte,
		Priority:        task.PriorityMedium,
		Assignee:        task.AssigneeCoordinator,
		DaysBeforeEvent: 21,
		GuidingQuestions: []string{
			"Have monitor and FOH engineers acknowledged the patch?",
		},
	},
	{
		CatalogID:       "extras-catering",
		Title:           "Book crew and artist catering",
		Description:     "Contract catering for load-in, show day and load-out.",
		Category:        task.CategoryExtras,
		Priority:        task.PriorityMedium,
		Assignee:        task.AssigneeCoordinator,
		DaysBeforeEvent: 14,
		GuidingQuestions: []string{
			"Are rider dietary restrictions covered?",
			"What is the headcount per meal service?",
		},
	},
	{
		CatalogID:       "extras-security-staff",
		Title:           "Confirm security and staffing plan",
		Description:     "Lock the security deployment, medical post and volunteer roster.",
		Category:        task.CategoryExtras,
		Priority:        task.PriorityHigh,
		Assignee:        task.AssigneeCoordinator,
		DaysBeforeEvent: 10,
		GuidingQuestions: []string{
			"Does the deployment match the permit's safety plan?",
			"Is the medical provider's ambulance confirmed on site?",
		},
		IsCritical: true,
	},
	{
		CatalogID:       "booking-final-payment",
		Title:           "Pay venue balance",
		Description:     "Wire the final venue installment before load-in.",
		Category:        task.CategoryBooking,
		Priority:        task.PriorityHigh,
		Assignee:        task.AssigneeProducer,
		DaysBeforeEvent: 7,
		GuidingQuestions: []string{
			"Any contracted deductions to apply before the final wire?",
		},
		IsCritical: true,
	},
	{
		CatalogID:       "mkt-final-push",
		Title:           "Run final sales push",
		Description:     "Last-week promo: reminder emails, countdown content, press follow-up.",
		Category:        task.CategoryMarketing,
		Priority:        task.PriorityHigh,
		Assignee:        task.AssigneeCoordinator,
		DaysBeforeEvent: 7,
		GuidingQuestions: []string{
			"Which tiers still have inventory to move?",
		},
	},
	{
		CatalogID:       "arte-soundcheck-schedule",
		Title:           "Publish soundcheck schedule",
		Description:     "Agree and distribute the show-day soundcheck and changeover schedule.",
		Category:        task.CategoryArte,
		Priority:        task.PriorityMedium,
		Assignee:        task.AssigneeCoordinator,
		DaysBeforeEvent: 5,
		GuidingQuestions: []string{
			"Does the schedule respect the venue curfew and union breaks?",
		},
	},
	{
		CatalogID:       "arte-setlist-confirm",
		Title:           "Collect final setlists",
		Description:     "Collect setlists and cue sheets from every act for FOH and lighting.",
		Category:        task.CategoryArte,
		Priority:        task.PriorityLow,
		Assignee:        task.AssigneeCoordinator,
		DaysBeforeEvent: 3,
		GuidingQuestions: []string{
			"Any pyro or confetti cues that need the safety officer's sign-off?",
		},
	},
	{
		CatalogID:       "mkt-guest-list",
		Title:           "Close guest list",
		Description:     "Freeze the guest list and send it to the box office.",
		Category:        task.CategoryMarketing,
		Priority:        task.PriorityLow,
		Assignee:        task.AssigneeCoordinator,
		DaysBeforeEvent: 2,
		GuidingQuestions: []string{
			"Are artist comps within the contracted allotment?",
		},
	},
	{
		CatalogID:       "extras-runner-schedule",
		Title:           "Publish runner schedule",
		Description:     "Assign runners and vehicles for airport pickups and show-day errands.",
		Category:        task.CategoryExtras,
		Priority:        task.PriorityLow,
		Assignee:        task.AssigneeCoordinator,
		DaysBeforeEvent: 1,
		GuidingQuestions: []string{
			"Do pickup times match the final travel itineraries?",
		},
	},
}
