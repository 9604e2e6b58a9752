package mail

import "html/template"

// Templates HTML dos emails transacionais. O conteúdo segue o visual
// escuro da loja; links de confirmação e entrega apontam para a API.
var (
	welcomeTemplate = template.Must(template.New("welcome").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #333; color: #fff; border-radius: 8px;">
  <h2 style="color: #007BFF; text-align: center;">Hello, {{.Name}}!</h2>
  <p style="font-size: 16px; text-align: center;">Welcome to <strong>GameVault</strong>! We are glad you're here.</p>
  <div style="text-align: center; margin: 20px 0;">
    <a href="{{.StoreURL}}" style="display: inline-block; padding: 12px 24px; background-color: #007BFF; color: #ffffff; text-decoration: none; font-size: 16px; border-radius: 5px;">Explore GameVault</a>
  </div>
  <p style="font-size: 14px; text-align: center; color: #ccc;">Enjoy your experience at GameVault!<br>The GameVault Team</p>
</div>`))

	confirmationTemplate = template.Must(template.New("confirmation").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #333; color: #fff; border-radius: 8px;">
  <h2 style="color: #007BFF; text-align: center;">Hello, {{.Name}}!</h2>
  <p style="font-size: 16px; text-align: center;">Thank you for joining GameVault! To get started, please confirm your account:</p>
  <div style="text-align: center; margin: 30px 0;">
    <a href="{{.ConfirmURL}}" style="display: inline-block; padding: 12px 24px; background-color: #28a745; color: #ffffff; text-decoration: none; font-size: 16px; border-radius: 5px;">Confirm Account</a>
  </div>
  <p style="font-size: 14px; color: #ccc; text-align: center;">If the button doesn't work, copy and paste this link into your browser:</p>
  <p style="font-size: 14px; text-align: center;"><a href="{{.ConfirmURL}}" style="color: #007BFF;">{{.ConfirmURL}}</a></p>
</div>`))

	orderTemplate = template.Must(template.New("order").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #333; color: #fff; border-radius: 8px;">
  <h2 style="color: #007BFF; text-align: center;">Thank you for your order, {{.Name}}!</h2>
  <p style="font-size: 16px; text-align: center;">We are pleased to inform you that your order has been successfully received.</p>
  <div style="background-color: #444; border: 1px solid #555; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="color: #fff; border-bottom: 1px solid #555; padding-bottom: 10px;">Order Details</h3>
    <p style="margin: 8px 0;"><strong>Order ID:</strong> {{.OrderID}}</p>
    <ul style="list-style: none; padding: 0;">
      {{range .Lines}}<li style="margin-bottom: 5px; color: #fff;">{{.Name}}{{if .Physical}} <strong style="color: yellow;"> - This item will be shipped!</strong>{{end}}</li>
      {{end}}
    </ul>
    <p style="margin: 8px 0;"><strong>Total:</strong> ${{.Total}}</p>
  </div>
  {{if .HasPhysical}}
  <div style="background-color: #444; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p style="font-size: 16px; text-align: center;"><strong>Notice:</strong> Your order contains physical products. These will be shipped to you.</p>
    <div style="text-align: center; margin: 20px 0;">
      <a href="{{.DeliverURL}}" style="display: inline-block; padding: 12px 24px; background-color: #28a745; color: #ffffff; text-decoration: none; font-size: 16px; border-radius: 5px;">Mark as Delivered</a>
    </div>
  </div>
  {{end}}
</div>`))

	deliveredTemplate = template.Must(template.New("delivered").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #333; color: #fff; border-radius: 8px;">
  <h2 style="color: #28a745; text-align: center;">Thank You for Your Purchase!</h2>
  <p style="font-size: 16px; text-align: center;">Your order has been successfully delivered. We hope you are enjoying your purchase!</p>
  <p style="font-size: 14px; text-align: center;">Best regards,<br>The GameVault Team</p>
</div>`))

	couponTemplate = template.Must(template.New("coupon").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #333; color: #fff; border-radius: 8px;">
  <h2 style="color: #007BFF; text-align: center;">Congratulations!</h2>
  <p style="font-size: 16px; text-align: center;">We are excited to offer you an exclusive gift coupon!</p>
  <div style="text-align: center; margin: 30px 0; border: 2px dashed #fff; padding: 20px; border-radius: 8px; background-color: #444;">
    <h3 style="font-size: 24px; color: #28a745;">Coupon Code: <strong style="font-size: 28px;">{{.Code}}</strong></h3>
    <p style="font-size: 20px;">Discount: <strong style="color: #ff5722; font-size: 26px;">{{.Discount}}% OFF</strong></p>
    <p style="font-size: 18px;">Valid until: <strong>{{.ExpirationDate}}</strong></p>
  </div>
  <p style="font-size: 16px; text-align: center;">Use this code on your next purchase and enjoy your discount!</p>
</div>`))
)
