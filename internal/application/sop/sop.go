// Package sop expone el contenido estático de los procedimientos operativos
// estándar del equipo de ventas: pasos del proceso y plantillas de email con
// variantes. Solo lectura; el contenido vive en el binario.
package sop

// Template una plantilla de email con asunto y cuerpo.
type Template struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Step un paso del SOP con sus variantes de plantilla.
type Step struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Note           string     `json:"note,omitempty"`
	DefaultVariant string     `json:"default_variant"`
	Variants       []Template `json:"variants"`
}

// Content respuesta completa del SOP.
type Content struct {
	Title string `json:"title"`
	Steps []Step `json:"steps"`
}

// Get devuelve el contenido del SOP. El orden de pasos refleja el flujo del
// proceso; el tablero no impone ese orden entre etapas (el SOP sugiere
// progresión, el pipeline no la exige).
func Get() Content {
	return Content{
		Title: "Standard Operating Procedures",
		Steps: steps,
	}
}

var steps = []Step{
	{
		ID:             "step1",
		Title:          "Step 1 — Intro & Discovery",
		Note:           "Logic Step 1.2: If needed, schedule a discovery call. If no call requested, skip to Step 2.",
		DefaultVariant: "standard",
		Variants: []Template{
			{
				Key:     "standard",
				Label:   "Standard",
				Subject: "Great to Connect",
				Body: `Hello,

Thank you for taking the time to connect.

I'd love to learn more about your business and what you're looking for in a payments/processing partner so we can see how best to support you.

Are you available for a quick call in the next few days? If email is easier, you're welcome to reply with a brief overview of your business (what you sell, how you accept payments today, and your typical monthly volume), and we'll take it from there.

Best regards,
Sales Support`,
			},
			{
				Key:     "brief",
				Label:   "Brief Follow-Up",
				Subject: "Quick Follow-Up & Next Steps",
				Body: `Hello,

Just following up on our recent connection.

When you have a moment, could you please reply with a quick overview of your business (what you sell, how you take payments today, and your approximate monthly volume)? That will help us confirm the best fit and next steps.

If you'd prefer a quick call instead, you're welcome to share a few times that work for you, and we'll schedule something.

Best regards,
Sales Support`,
			},
		},
	},
	{
		ID:             "step1-2",
		Title:          "Step 1.2 — Call Scheduling",
		DefaultVariant: "standard",
		Variants: []Template{
			{
				Key:     "standard",
				Label:   "Standard",
				Subject: "Schedule a Quick Discovery Call",
				Body: `Hello,

Thanks again for connecting.

To make next steps easy, you can book a quick discovery call at a time that works best for you using the link below:

https://calendar.app.google/6F1xCy8DcVh8B4aR7

On this call, we'll review your business model, products/services, and any specific requirements so we can recommend the best solution.

If you prefer to continue over email instead, just reply with a brief description of your business and any questions you have.

Best regards,
Sales Support`,
			},
		},
	},
	{
		ID:             "step2",
		Title:          "Step 2 — Request for Documents",
		DefaultVariant: "standard",
		Variants: []Template{
			{
				Key:     "standard",
				Label:   "Standard",
				Subject: "Next Steps to Complete Your Application",
				Body: `Hello,

Thank you again for your interest in working with us.

To move your application forward to underwriting, we just need a bit more information and a few standard documents.

Please complete the attached form and return it along with:

- 3 most recent months of bank statements (business or personal)
- 3 most recent months of processing statements, if available
- Voided check or bank letter showing your account and routing details
- Articles of Organization (or equivalent formation document)
- Copy of the owner's driver's license or passport
- Social Security Number (SSN) for the principal owner
- A brief overview of your products and services

You can reply to this email with the documents attached, or let us know if you'd prefer to use a secure upload method and we'll provide details.

Once we have everything, we'll submit your file for review right away and update you on the next steps.

Thanks,
Sales Support`,
			},
			{
				Key:     "prelaunch",
				Label:   "Pre-Launch / No Processing History",
				Subject: "Next Steps to Complete Your Application (Pre-Launch)",
				Body: `Hello,

Thank you again for your interest in working with us.

Because your business is pre-launch / has limited processing history, underwriting will focus more on your business model and projections. To move your application forward, please complete the attached form and return it along with:

- 3 most recent months of bank statements (business or personal)
- Voided check or bank letter showing your account and routing details
- Articles of Organization (or equivalent formation document)
- Copy of the owner's driver's license or passport
- Social Security Number (SSN) for the principal owner
- A detailed overview of your products and services, target customers and projections
- Brief explanation of your experience in this industry or related fields

Once we have everything, we'll submit your file for review right away and update you on the next steps.

Thanks,
Sales Support`,
			},
		},
	},
	{
		ID:             "step3",
		Title:          "Step 3 — Application in Process",
		DefaultVariant: "standard",
		Variants: []Template{
			{
				Key:     "standard",
				Label:   "Standard",
				Subject: "Your Application Is Now in Process",
				Body: `Hello,

Thank you for sending through your documents.

We've received your application and supporting information and have submitted your file to our processing/underwriting team for review. Your application is now officially in process.

If anything additional is required, we'll reach out right away. Otherwise, we'll provide an update as soon as the review is complete.

Best regards,
Sales Support`,
			},
		},
	},
}
